package models

// Project is a saved chart: its configuration together with the raw dataset.
type Project struct {
	// Name is the project name, usually the source file name (no path).
	Name string `json:"name"`
	// Config is the chart configuration.
	Config ChartConfig `json:"config"`
	// Data is the unmodified dataset.
	Data *Dataset `json:"data"`
}

// RenderInput is everything a renderer needs to draw the current view.
type RenderInput struct {
	// Rows is the derived view, not the raw dataset.
	Rows *Dataset `json:"rows"`
	// CategoryKey is the X axis column.
	CategoryKey string `json:"category"`
	// ValueKeys are the plotted columns.
	ValueKeys []string `json:"values"`
	// SeriesStyle maps value keys to line styles.
	SeriesStyle map[string]SeriesStyle `json:"series_style"`
	// Format is applied to value-axis labels.
	Format FormatConfig `json:"format"`
	// Style holds chart-wide presentation settings.
	Style StyleOptions `json:"style"`
}

// PlottedKeys returns the value keys to draw, followed by their moving-average
// companions when those are enabled and present in Rows.
func (in RenderInput) PlottedKeys() []string {
	keys := append([]string(nil), in.ValueKeys...)
	if !in.Style.PlotMovingAverage {
		return keys
	}
	for _, k := range in.ValueKeys {
		ma := k + MovingAverageSuffix
		if in.Rows.HasColumn(ma) {
			keys = append(keys, ma)
		}
	}
	return keys
}
