package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		cfg  models.FormatConfig
		want string
	}{
		{"grouped decimal comma", 1234.5, models.FormatConfig{Precision: 1, GroupDigits: true, DecimalSeparator: ",", Prefix: "$"}, "$1,234,5"},
		{"default", 1234567, models.DefaultFormatConfig(), "1,234,567"},
		{"no grouping", 1234567, models.FormatConfig{}, "1234567"},
		{"small", 999, models.DefaultFormatConfig(), "999"},
		{"negative", -1234567.891, models.FormatConfig{Precision: 2, GroupDigits: true}, "-1,234,567.89"},
		{"tie away from zero", 2.5, models.FormatConfig{}, "3"},
		{"negative tie", -2.5, models.FormatConfig{}, "-3"},
		{"binary below tie", 1.005, models.FormatConfig{Precision: 2}, "1.00"},
		{"padded fraction", 0.05, models.FormatConfig{Precision: 3}, "0.050"},
		{"suffix", 42, models.FormatConfig{Suffix: "%"}, "42%"},
		{"infinity", math.Inf(1), models.FormatConfig{GroupDigits: true, Prefix: "$"}, "$Infinity"},
		{"negative infinity", math.Inf(-1), models.FormatConfig{}, "-Infinity"},
		{"huge", 1e21, models.DefaultFormatConfig(), "1e+21"},
		{"nan", math.NaN(), models.FormatConfig{Prefix: "$"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.v, tt.cfg))
		})
	}
}

func TestCell(t *testing.T) {
	cfg := models.FormatConfig{Precision: 2, GroupDigits: true, DecimalSeparator: "."}
	assert.Equal(t, "1,000.00", Cell(models.Number(1000), cfg))
	assert.Equal(t, "2023-01", Cell(models.Text("2023-01"), cfg))
	assert.Equal(t, "", Cell(models.Empty(), cfg))
}

func TestFormatter(t *testing.T) {
	f := Formatter(models.FormatConfig{Suffix: " kg"})
	assert.Equal(t, "3 kg", f(3.2))
	assert.Equal(t, "4 kg", f(3.5))
}
