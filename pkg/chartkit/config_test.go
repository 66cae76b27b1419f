package chartkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("category: month\nvalues: [sales]\nview:\n  sort: descending\n"))
	require.NoError(t, err)

	assert.Equal(t, "month", cfg.CategoryKey)
	assert.Equal(t, []string{"sales"}, cfg.ValueKeys)
	assert.Equal(t, models.SortDescending, cfg.View.SortOrder)
	assert.Equal(t, models.DefaultRangePercent, cfg.View.RangePercent)
	assert.Equal(t, models.DefaultFormatConfig(), cfg.Format)
	assert.Equal(t, models.DefaultStyleOptions(), cfg.Style)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("view: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestSaveLoadConfig_RoundTrip(t *testing.T) {
	d, err := NewDocumentFromDataset(SampleBusinessDataset(), DefaultImportOptions())
	require.NoError(t, err)
	require.NoError(t, d.SetSortOrder(models.SortAscending))
	require.NoError(t, d.SetRangePercent(50))
	require.NoError(t, d.SetFormat(models.FormatConfig{Precision: 1, GroupDigits: true, DecimalSeparator: ",", Prefix: "$"}))
	require.NoError(t, d.SetSeriesStyle("profit", models.SeriesStyle{Thickness: 4, DotSize: 2}))

	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, SaveConfig(path, d.Config()))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, d.Config(), *cfg)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyConfig(t *testing.T) {
	d, err := NewDocumentFromDataset(SampleBusinessDataset(), DefaultImportOptions())
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Formulas = []models.FormulaColumn{{Name: "margin", Expression: "profit / revenue * 100"}}
	cfg.ValueKeys = []string{"margin", "date", "revenue"}
	cfg.Series = map[string]models.SeriesStyle{
		"margin":   {Thickness: 3, DotSize: 1},
		"expenses": {Thickness: 9, DotSize: 9},
	}
	cfg.View.Transforms.Cumulative = true
	cfg.Style.Title = "Margin"

	require.NoError(t, d.ApplyConfig(cfg))
	assert.Equal(t, "date", d.Axes().CategoryKey)
	assert.Equal(t, []string{"margin", "revenue"}, d.Axes().ValueKeys)
	assert.Equal(t, models.SeriesStyle{Thickness: 3, DotSize: 1}, d.SeriesStyles()["margin"])
	assert.Equal(t, models.DefaultSeriesStyle(), d.SeriesStyles()["revenue"])
	_, styled := d.SeriesStyles()["expenses"]
	assert.False(t, styled)
	assert.True(t, d.ViewOptions().Transforms.Cumulative)
	assert.Equal(t, "Margin", d.Style().Title)

	margin, ok := d.Dataset().Cell(0, "margin").Float()
	require.True(t, ok)
	assert.InDelta(t, 13000.0/45000.0*100, margin, 1e-9)
}

func TestApplyConfig_KeepsAxesWhenUnset(t *testing.T) {
	d := NewDocument()
	cfg := DefaultConfig()
	cfg.View.RangePercent = 0

	require.NoError(t, d.ApplyConfig(cfg))
	assert.Equal(t, "x", d.Axes().CategoryKey)
	assert.Equal(t, []string{"y"}, d.Axes().ValueKeys)
	assert.Equal(t, models.DefaultRangePercent, d.ViewOptions().RangePercent)
}

func TestApplyConfig_Atomic(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.ChartConfig)
		target error
	}{
		{"unknown category", func(c *models.ChartConfig) { c.CategoryKey = "nope" }, ErrUnknownColumn},
		{"unknown value", func(c *models.ChartConfig) { c.ValueKeys = []string{"nope"} }, ErrUnknownColumn},
		{"bad formula", func(c *models.ChartConfig) {
			c.Formulas = []models.FormulaColumn{{Name: "f", Expression: "y +"}}
		}, ErrFormula},
		{"bad sort", func(c *models.ChartConfig) { c.View.SortOrder = "up" }, ErrInvalidOption},
		{"bad range", func(c *models.ChartConfig) { c.View.RangePercent = 120 }, ErrInvalidOption},
		{"bad colour", func(c *models.ChartConfig) { c.Style.Background = "white" }, ErrInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument()
			before := d.Config()
			data := d.Dataset()

			cfg := DefaultConfig()
			cfg.ValueKeys = []string{}
			cfg.View.SortOrder = models.SortDescending
			cfg.Formulas = []models.FormulaColumn{{Name: "z", Expression: "y * 2"}}
			tt.modify(&cfg)

			err := d.ApplyConfig(cfg)
			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, before, d.Config())
			assert.Same(t, data, d.Dataset())
		})
	}
}

func TestProject(t *testing.T) {
	d := NewDocument()
	p := d.Project("sample.csv")
	assert.Equal(t, "sample.csv", p.Name)
	assert.Equal(t, d.Config(), p.Config)
	assert.Same(t, d.Dataset(), p.Data)
}
