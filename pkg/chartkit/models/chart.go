package models

// SortOrder controls how rows are ordered by the category column.
type SortOrder string

const (
	// SortDefault keeps the dataset order.
	SortDefault SortOrder = "default"
	// SortAscending orders rows by increasing category value.
	SortAscending SortOrder = "ascending"
	// SortDescending orders rows by decreasing category value.
	SortDescending SortOrder = "descending"
)

// Default values for new charts.
const (
	DefaultThickness     = 2.0
	DefaultDotSize       = 4.0
	DefaultMAWindow      = 3
	DefaultRangePercent  = 100
	DefaultWidth         = 800
	DefaultHeight        = 500
	DefaultFontSize      = 12.0
	DefaultBackground    = "#ffffff"
	MovingAverageSuffix  = "_MA"
	DefaultDecimalSymbol = "."
)

// DefaultPalette is the series colour cycle.
var DefaultPalette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd"}

// Axes selects the category column and the plotted value columns.
type Axes struct {
	// CategoryKey is the column used for the X axis.
	CategoryKey string `json:"category" yaml:"category"`
	// ValueKeys are the plotted columns, in legend order.
	ValueKeys []string `json:"values" yaml:"values"`
}

// Clone returns a copy that shares no slices with a.
func (a Axes) Clone() Axes {
	return Axes{CategoryKey: a.CategoryKey, ValueKeys: append([]string(nil), a.ValueKeys...)}
}

// HasValueKey reports whether key is plotted.
func (a Axes) HasValueKey(key string) bool {
	for _, k := range a.ValueKeys {
		if k == key {
			return true
		}
	}
	return false
}

// SeriesStyle is the line style of one value series.
type SeriesStyle struct {
	// Thickness is the stroke width.
	Thickness float64 `json:"thickness" yaml:"thickness"`
	// DotSize is the point radius.
	DotSize float64 `json:"dot_size" yaml:"dot_size"`
}

// DefaultSeriesStyle returns the style assigned to a newly plotted series.
func DefaultSeriesStyle() SeriesStyle {
	return SeriesStyle{Thickness: DefaultThickness, DotSize: DefaultDotSize}
}

// MovingAverage configures the trailing-mean transform.
type MovingAverage struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Window  int  `json:"window" yaml:"window"`
}

// Transforms holds the value transforms applied when deriving a view.
// They compose in a fixed order: normalize, cumulative, percentage, moving average.
type Transforms struct {
	Normalize     bool          `json:"normalize" yaml:"normalize"`
	Cumulative    bool          `json:"cumulative" yaml:"cumulative"`
	Percentage    bool          `json:"percentage" yaml:"percentage"`
	MovingAverage MovingAverage `json:"moving_average" yaml:"moving_average"`
}

// ViewOptions configures view derivation: ordering, range window and transforms.
type ViewOptions struct {
	// SortOrder orders rows by the category column.
	SortOrder SortOrder `json:"sort" yaml:"sort"`
	// RangePercent is the share of rows (1-100) kept after sorting.
	RangePercent int `json:"range_percent" yaml:"range_percent"`
	// Transforms are the value transforms.
	Transforms Transforms `json:"transforms" yaml:"transforms"`
}

// DefaultViewOptions shows every row unsorted and untransformed.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		SortOrder:    SortDefault,
		RangePercent: DefaultRangePercent,
		Transforms: Transforms{
			MovingAverage: MovingAverage{Window: DefaultMAWindow},
		},
	}
}

// FormatConfig governs how numeric values are displayed. It never changes data.
type FormatConfig struct {
	Precision        int    `json:"precision" yaml:"precision"`
	GroupDigits      bool   `json:"group_digits" yaml:"group_digits"`
	DecimalSeparator string `json:"decimal_separator" yaml:"decimal_separator"`
	Prefix           string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix           string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// DefaultFormatConfig returns integer display with digit grouping.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{GroupDigits: true, DecimalSeparator: DefaultDecimalSymbol}
}

// FormulaColumn is a column computed from an expression over other columns.
type FormulaColumn struct {
	Name       string `json:"name" yaml:"name"`
	Expression string `json:"expr" yaml:"expr"`
}

// ChartConfig is the serialisable description of a chart, excluding its data.
type ChartConfig struct {
	Axes     `yaml:",inline"`
	View     ViewOptions            `json:"view" yaml:"view"`
	Format   FormatConfig           `json:"format" yaml:"format"`
	Style    StyleOptions           `json:"style" yaml:"style"`
	Series   map[string]SeriesStyle `json:"series,omitempty" yaml:"series,omitempty"`
	Formulas []FormulaColumn        `json:"formulas,omitempty" yaml:"formulas,omitempty"`
}
