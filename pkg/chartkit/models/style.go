package models

// StyleOptions holds chart-wide presentation settings.
type StyleOptions struct {
	// Title is the chart title; also used to derive export file names.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// XAxisTitle is the category axis label.
	XAxisTitle string `json:"x_axis_title,omitempty" yaml:"x_axis_title,omitempty"`
	// YAxisTitle is the value axis label.
	YAxisTitle string `json:"y_axis_title,omitempty" yaml:"y_axis_title,omitempty"`
	// FontSize is the base font size in points.
	FontSize float64 `json:"font_size" yaml:"font_size"`
	// Background is the background colour as #rrggbb.
	Background string `json:"background" yaml:"background"`
	// Palette is the series colour cycle as #rrggbb values.
	Palette []string `json:"palette" yaml:"palette"`
	// ShowLegend draws the series legend.
	ShowLegend bool `json:"show_legend" yaml:"show_legend"`
	// ShowGrid draws major grid lines.
	ShowGrid bool `json:"show_grid" yaml:"show_grid"`
	// ShowPoints draws a dot at every data point.
	ShowPoints bool `json:"show_points" yaml:"show_points"`
	// PlotMovingAverage also draws the derived "_MA" series.
	PlotMovingAverage bool `json:"plot_moving_average" yaml:"plot_moving_average"`
	// Width is the rendered image width in pixels.
	Width int `json:"width" yaml:"width"`
	// Height is the rendered image height in pixels.
	Height int `json:"height" yaml:"height"`
}

// DefaultStyleOptions returns the look of a new chart.
func DefaultStyleOptions() StyleOptions {
	return StyleOptions{
		FontSize:   DefaultFontSize,
		Background: DefaultBackground,
		Palette:    append([]string(nil), DefaultPalette...),
		ShowLegend: true,
		ShowGrid:   true,
		ShowPoints: true,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}
}

// SeriesColor returns the palette colour for the i-th series.
func (s StyleOptions) SeriesColor(i int) string {
	palette := s.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[i%len(palette)]
}

// ValidColor reports whether s is a #rgb or #rrggbb hex colour.
func ValidColor(s string) bool {
	if len(s) != 4 && len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
