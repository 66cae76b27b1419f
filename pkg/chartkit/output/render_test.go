package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/format"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

func sampleInput(n int) models.RenderInput {
	ds := models.NewDataset("month", "sales", "sales_MA")
	for i := 0; i < n; i++ {
		ds.Rows = append(ds.Rows, models.Row{
			models.Text(string(rune('A' + i%26))),
			models.Number(float64(i * 10)),
			models.Number(float64(i * 9)),
		})
	}
	return models.RenderInput{
		Rows:        ds,
		CategoryKey: "month",
		ValueKeys:   []string{"sales"},
		SeriesStyle: map[string]models.SeriesStyle{"sales": models.DefaultSeriesStyle()},
		Format:      models.DefaultFormatConfig(),
		Style:       models.DefaultStyleOptions(),
	}
}

func TestRenderPNG(t *testing.T) {
	in := sampleInput(5)
	in.Style.Title = "Sales"

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, in))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, sampleInput(3)))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRender_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		in   models.RenderInput
	}{
		{"single row", sampleInput(1)},
		{"no rows", sampleInput(0)},
		{"no value keys", func() models.RenderInput {
			in := sampleInput(4)
			in.ValueKeys = nil
			return in
		}()},
		{"flat values", func() models.RenderInput {
			in := sampleInput(3)
			for _, row := range in.Rows.Rows {
				row[1] = models.Number(7)
			}
			return in
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, RenderPNG(&buf, tt.in))
		})
	}
}

func TestBuildChart_Series(t *testing.T) {
	in := sampleInput(4)
	in.Rows.Rows[2][1] = models.Empty()

	ch := BuildChart(in)
	require.Len(t, ch.Series, 1)
	cs := ch.Series[0].(chart.ContinuousSeries)
	assert.Equal(t, "sales", cs.Name)
	assert.Equal(t, []float64{1, 2, 4}, cs.XValues)
	assert.Equal(t, []float64{0, 10, 30}, cs.YValues)
	assert.NotEmpty(t, ch.Elements, "legend expected")

	in.Style.PlotMovingAverage = true
	in.Style.ShowLegend = false
	ch = BuildChart(in)
	require.Len(t, ch.Series, 2)
	assert.Equal(t, "sales_MA", ch.Series[1].GetName())
	assert.Empty(t, ch.Elements)
}

func TestCategoryTicks_Thinned(t *testing.T) {
	in := sampleInput(30)
	ticks := categoryTicks(in.Rows, "month", 30)

	require.Len(t, ticks, 32)
	assert.Equal(t, 0.5, ticks[0].Value)
	assert.Equal(t, 30.5, ticks[31].Value)
	assert.Equal(t, "A", ticks[1].Label)
	assert.Equal(t, "", ticks[2].Label)
	assert.Equal(t, "D", ticks[4].Label)
}

func TestNiceTicks_FormatsLabels(t *testing.T) {
	cfg := models.FormatConfig{Precision: 0, GroupDigits: true, DecimalSeparator: ".", Prefix: "$"}
	ticks := niceTicks(0, 5000, 6, format.Formatter(cfg))

	require.NotEmpty(t, ticks)
	assert.LessOrEqual(t, ticks[0].Value, 0.0)
	assert.GreaterOrEqual(t, ticks[len(ticks)-1].Value, 5000.0)
	assert.Equal(t, "$0", ticks[0].Label)
	assert.Contains(t, ticks[len(ticks)-1].Label, ",")
}
