// Package output writes charts and datasets in export formats.
package output

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/format"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

// maxCategoryLabels caps the number of labelled X ticks.
const maxCategoryLabels = 12

// RenderPNG draws the line chart described by in as a PNG image.
func RenderPNG(w io.Writer, in models.RenderInput) error {
	return render(w, in, chart.PNG)
}

// RenderSVG draws the line chart described by in as an SVG document.
func RenderSVG(w io.Writer, in models.RenderInput) error {
	return render(w, in, chart.SVG)
}

func render(w io.Writer, in models.RenderInput, rp chart.RendererProvider) error {
	ch := BuildChart(in)
	// render to a buffer so a failed render leaves w untouched
	var buf bytes.Buffer
	if err := ch.Render(rp, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// BuildChart converts a render input into a go-chart chart. Categories are
// placed at X = 1..n; missing values are left out of their series.
func BuildChart(in models.RenderInput) chart.Chart {
	st := in.Style
	n := 0
	if in.Rows != nil {
		n = in.Rows.Len()
	}

	var series []chart.Series
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for i, key := range in.PlottedKeys() {
		xs, ys := seriesPoints(in.Rows, key)
		if len(xs) == 0 {
			continue
		}
		for _, y := range ys {
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    key,
			XValues: xs,
			YValues: ys,
			Style:   seriesStyle(in, key, i),
		})
	}

	haveY := minY <= maxY
	if !haveY {
		minY, maxY = 0, 1
	}
	if maxY <= minY {
		pad := math.Max(math.Abs(minY)*0.1, 1)
		minY, maxY = minY-pad, maxY+pad
	}

	showLegend := st.ShowLegend && len(series) > 0
	if len(series) == 0 {
		// go-chart refuses to draw without a visible series
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{0.5, float64(max(n, 1)) + 0.5},
			YValues: []float64{minY, maxY},
			Style: chart.Style{
				StrokeColor: drawing.ColorTransparent,
				StrokeWidth: 1,
			},
		})
	}

	bg := hexColor(st.Background, models.DefaultBackground)
	fontSize := st.FontSize
	if fontSize <= 0 {
		fontSize = models.DefaultFontSize
	}
	grid := chart.Style{Hidden: true}
	if st.ShowGrid {
		grid = chart.Style{StrokeColor: drawing.ColorFromHex("e0e0e0"), StrokeWidth: 1}
	}

	ch := chart.Chart{
		Title:      st.Title,
		TitleStyle: chart.Style{Hidden: st.Title == "", FontSize: fontSize * 1.5},
		Width:      orDefaultInt(st.Width, models.DefaultWidth),
		Height:     orDefaultInt(st.Height, models.DefaultHeight),
		Background: chart.Style{FillColor: bg, Padding: chart.Box{Top: 24, Left: 16, Right: 24, Bottom: 16}},
		Canvas:     chart.Style{FillColor: bg},
		XAxis: chart.XAxis{
			Name:           st.XAxisTitle,
			Style:          chart.Style{FontSize: fontSize},
			Ticks:          categoryTicks(in.Rows, in.CategoryKey, n),
			GridMajorStyle: grid,
			GridMinorStyle: chart.Style{Hidden: true},
		},
		YAxis: chart.YAxis{
			Name:           st.YAxisTitle,
			Style:          chart.Style{FontSize: fontSize},
			Ticks:          niceTicks(minY, maxY, 6, format.Formatter(in.Format)),
			GridMajorStyle: grid,
			GridMinorStyle: chart.Style{Hidden: true},
		},
		Series: series,
	}
	if showLegend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch
}

// seriesPoints collects the numeric cells of column key as (x, y) pairs.
func seriesPoints(ds *models.Dataset, key string) ([]float64, []float64) {
	if ds == nil {
		return nil, nil
	}
	col := ds.ColumnIndex(key)
	if col < 0 {
		return nil, nil
	}
	var xs, ys []float64
	for i, row := range ds.Rows {
		if v, ok := row[col].Float(); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
			xs = append(xs, float64(i+1))
			ys = append(ys, v)
		}
	}
	return xs, ys
}

func seriesStyle(in models.RenderInput, key string, index int) chart.Style {
	ss, ok := in.SeriesStyle[key]
	if !ok {
		ss = models.DefaultSeriesStyle()
	}
	col := hexColor(in.Style.SeriesColor(index), models.DefaultPalette[index%len(models.DefaultPalette)])
	st := chart.Style{
		StrokeColor: col,
		StrokeWidth: ss.Thickness,
	}
	if in.Style.ShowPoints {
		st.DotColor = col
		st.DotWidth = ss.DotSize
	}
	return st
}

// categoryTicks labels X positions 1..n with the category column. Long
// datasets only label every k-th point. The outer ticks pad the range by
// half a step so n=1 still has a non-zero width.
func categoryTicks(ds *models.Dataset, categoryKey string, n int) []chart.Tick {
	if n == 0 {
		return []chart.Tick{{Value: 0.5}, {Value: 1.5}}
	}
	step := (n + maxCategoryLabels - 1) / maxCategoryLabels
	col := ds.ColumnIndex(categoryKey)
	ticks := make([]chart.Tick, 0, n+2)
	ticks = append(ticks, chart.Tick{Value: 0.5})
	for i := 0; i < n; i++ {
		tick := chart.Tick{Value: float64(i + 1)}
		if i%step == 0 {
			if col >= 0 {
				tick.Label = ds.Rows[i][col].String()
			} else {
				tick.Label = fmt.Sprintf("%d", i+1)
			}
		}
		ticks = append(ticks, tick)
	}
	ticks = append(ticks, chart.Tick{Value: float64(n) + 0.5})
	return ticks
}

// niceTicks picks about n evenly spaced ticks on a 1, 2, 2.5, 5 scale that
// cover [min, max].
func niceTicks(min, max float64, n int, label func(float64) string) []chart.Tick {
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for i := 0; ; i++ {
		v := start + float64(i)*bestStep
		if v > end+bestStep/2 || len(ticks) > n+2 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: label(v)})
	}
	return ticks
}

// hexColor parses s, falling back to def when s is not a valid colour.
func hexColor(s, def string) drawing.Color {
	if !models.ValidColor(s) {
		s = def
	}
	return drawing.ColorFromHex(s)
}

func orDefaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
