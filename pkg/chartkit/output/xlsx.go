package output

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
)

const (
	dataSheet = "Data"
	viewSheet = "View"
)

// WriteXLSX writes a workbook with the raw dataset on a "Data" sheet, the
// derived view on a "View" sheet and a native line chart over the view.
func WriteXLSX(w io.Writer, raw *models.Dataset, in models.RenderInput) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return err
	}
	if err := writeSheet(f, dataSheet, raw); err != nil {
		return err
	}
	if _, err := f.NewSheet(viewSheet); err != nil {
		return err
	}
	if err := writeSheet(f, viewSheet, in.Rows); err != nil {
		return err
	}
	if err := addLineChart(f, in); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, ds *models.Dataset) error {
	if ds == nil {
		return nil
	}
	header := make([]any, len(ds.Columns))
	for i, c := range ds.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for r, row := range ds.Rows {
		values := make([]any, len(row))
		for i, c := range row {
			switch c.Kind() {
			case models.KindNumber:
				values[i], _ = c.Float()
			case models.KindText:
				values[i] = c.String()
			default:
				values[i] = nil
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// addLineChart places a chart next to the view table. Nothing is added when
// the view has no rows or no plotted columns.
func addLineChart(f *excelize.File, in models.RenderInput) error {
	ds := in.Rows
	if ds == nil || ds.Len() == 0 {
		return nil
	}
	lastRow := ds.Len() + 1
	catCol := ds.ColumnIndex(in.CategoryKey)

	var series []excelize.ChartSeries
	for i, key := range in.PlottedKeys() {
		col := ds.ColumnIndex(key)
		if col < 0 {
			continue
		}
		s := excelize.ChartSeries{
			Name:   fmt.Sprintf("%s!%s", viewSheet, absCell(col+1, 1)),
			Values: absRange(col+1, 2, lastRow),
			Line:   excelize.ChartLine{Width: lineWidth(in, key)},
			Fill:   solidFill(in.Style.SeriesColor(i)),
			Marker: marker(in, key, i),
		}
		if catCol >= 0 {
			s.Categories = absRange(catCol+1, 2, lastRow)
		}
		series = append(series, s)
	}
	if len(series) == 0 {
		return nil
	}

	chart := &excelize.Chart{
		Type:   excelize.Line,
		Series: series,
		Legend: excelize.ChartLegend{Position: "bottom"},
		XAxis:  excelize.ChartAxis{MajorGridLines: in.Style.ShowGrid},
		YAxis:  excelize.ChartAxis{MajorGridLines: in.Style.ShowGrid},
		Dimension: excelize.ChartDimension{
			Width:  uint(orDefaultInt(in.Style.Width, models.DefaultWidth)),
			Height: uint(orDefaultInt(in.Style.Height, models.DefaultHeight)),
		},
	}
	if !in.Style.ShowLegend {
		chart.Legend.Position = "none"
	}
	if t := in.Style.Title; t != "" {
		chart.Title = []excelize.RichTextRun{{Text: t}}
	}
	if t := in.Style.XAxisTitle; t != "" {
		chart.XAxis.Title = []excelize.RichTextRun{{Text: t}}
	}
	if t := in.Style.YAxisTitle; t != "" {
		chart.YAxis.Title = []excelize.RichTextRun{{Text: t}}
	}

	anchor, err := excelize.CoordinatesToCellName(len(ds.Columns)+2, 1)
	if err != nil {
		return err
	}
	return f.AddChart(viewSheet, anchor, chart)
}

func lineWidth(in models.RenderInput, key string) float64 {
	if st, ok := in.SeriesStyle[key]; ok {
		return st.Thickness * 0.75
	}
	return models.DefaultThickness * 0.75
}

func marker(in models.RenderInput, key string, index int) excelize.ChartMarker {
	if !in.Style.ShowPoints {
		return excelize.ChartMarker{Symbol: "none"}
	}
	radius := models.DefaultDotSize
	if st, ok := in.SeriesStyle[key]; ok {
		radius = st.DotSize
	}
	return excelize.ChartMarker{
		Symbol: "circle",
		Size:   min(max(int(math.Round(radius*2)), 2), 72),
		Fill:   solidFill(in.Style.SeriesColor(index)),
	}
}

// solidFill returns a solid fill in #rrggbb; short and invalid colours are
// expanded or replaced so the chart XML stays valid.
func solidFill(color string) excelize.Fill {
	if !models.ValidColor(color) {
		color = models.DefaultPalette[0]
	}
	if len(color) == 4 {
		color = "#" + strings.Repeat(color[1:2], 2) + strings.Repeat(color[2:3], 2) + strings.Repeat(color[3:4], 2)
	}
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func absCell(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row, true)
	return cell
}

func absRange(col, fromRow, toRow int) string {
	return fmt.Sprintf("%s!%s:%s", viewSheet, absCell(col, fromRow), absCell(col, toRow))
}
