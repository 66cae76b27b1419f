package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartkit-go/internal/logging"
	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/output"
)

// Flags shared by the commands that load a document.
var (
	configPath  string
	useSample   bool
	sheetName   string
	cellRange   string
	maxSeries   int
	categoryKey string
)

// render flags
var (
	outputPath   string
	outputFormat string
	pretty       bool
	valueKeys    []string
	sortOrder    string
	rangePercent int
	normalize    bool
	cumulative   bool
	percentage   bool
	maWindow     int
	plotMA       bool
	formulas     []string
	title        string
	precision    int
	groupDigits  bool
	decimalSep   string
	prefix       string
	suffix       string
)

func addLoadFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", "", "YAML chart configuration to apply")
	cmd.Flags().BoolVar(&useSample, "sample", false, "Use the built-in business sample instead of a file")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet to import from an Excel file (default: first)")
	cmd.Flags().StringVar(&cellRange, "cells", "", "Cell range to import from an Excel file, e.g. A1:D13")
	cmd.Flags().IntVar(&maxSeries, "max-series", chartkit.DefaultMaxValueKeys, "Maximum number of columns plotted on import")
	cmd.Flags().StringVar(&categoryKey, "category", "", "Column used for the X axis")
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [input.csv|input.xlsx]",
		Short: "Render a chart or export its data",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	addLoadFlags(cmd)

	f := cmd.Flags()
	f.StringVarP(&outputPath, "output", "o", "", "Output file path, - for stdout (default: derived from the title)")
	f.StringVar(&outputFormat, "format", "", "Output format: png, svg, csv, xlsx, json, render-json, yaml (default: from -o, else png)")
	f.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	f.StringSliceVar(&valueKeys, "values", nil, "Columns to plot, comma separated")
	f.StringVar(&sortOrder, "sort", "", "Row order: default, ascending, descending")
	f.IntVar(&rangePercent, "range", 0, "Percentage of rows to show (1-100)")
	f.BoolVar(&normalize, "normalize", false, "Scale each series to [0,1]")
	f.BoolVar(&cumulative, "cumulative", false, "Plot running totals")
	f.BoolVar(&percentage, "percentage", false, "Plot each value as a share of its series total")
	f.IntVar(&maWindow, "ma-window", 0, "Add a moving average over this many rows (>= 2)")
	f.BoolVar(&plotMA, "plot-ma", false, "Draw the moving average series")
	f.StringArrayVar(&formulas, "formula", nil, "Add a computed column, name=expression (repeatable)")
	f.StringVar(&title, "title", "", "Chart title")
	f.IntVar(&precision, "precision", 0, "Fraction digits of value labels")
	f.BoolVar(&groupDigits, "group-digits", true, "Group thousands in value labels")
	f.StringVar(&decimalSep, "decimal-sep", ".", "Decimal separator of value labels")
	f.StringVar(&prefix, "prefix", "", "Text before value labels, e.g. $")
	f.StringVar(&suffix, "suffix", "", "Text after value labels, e.g. %")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(cmd, args)
	if err != nil {
		return err
	}
	if err := applyRenderFlags(cmd, doc); err != nil {
		return err
	}

	format, err := resolveFormat(outputFormat, outputPath)
	if err != nil {
		return err
	}
	path := outputPath
	if path == "" {
		path = defaultOutputPath(doc.Style().Title, format)
	}

	var buf bytes.Buffer
	if err := export(&buf, doc, format, inputName(args)); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logging.Infof("wrote %s (%s)", path, format)
	fmt.Fprintln(cmd.ErrOrStderr(), path)
	return nil
}

// loadDocument builds the document from the input file or the sample and
// applies --config and --category.
func loadDocument(cmd *cobra.Command, args []string) (*chartkit.Document, error) {
	opts := chartkit.DefaultImportOptions()
	opts.MaxValueKeys = maxSeries
	opts.CategoryKey = categoryKey
	opts.Sheet = sheetName
	opts.Range = cellRange

	var doc *chartkit.Document
	var err error
	switch {
	case useSample && len(args) > 0:
		return nil, fmt.Errorf("--sample cannot be combined with an input file")
	case useSample:
		doc, err = chartkit.NewDocumentFromDataset(chartkit.SampleBusinessDataset(), opts)
	case len(args) == 1:
		if _, statErr := os.Stat(args[0]); os.IsNotExist(statErr) {
			return nil, fmt.Errorf("file not found: %s", args[0])
		}
		doc, err = chartkit.Load(args[0], opts)
	default:
		doc = chartkit.NewDocument()
	}
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}

	if configPath != "" {
		cfg, err := chartkit.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := doc.ApplyConfig(*cfg); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
	}
	if cmd.Flags().Changed("category") {
		if err := doc.SetCategoryKey(categoryKey); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func applyRenderFlags(cmd *cobra.Command, doc *chartkit.Document) error {
	changed := cmd.Flags().Changed

	for _, f := range formulas {
		name, expression, ok := strings.Cut(f, "=")
		if !ok {
			return fmt.Errorf("invalid formula %q (want name=expression)", f)
		}
		if _, err := doc.AddFormulaColumn(strings.TrimSpace(name), strings.TrimSpace(expression)); err != nil {
			return err
		}
	}

	if changed("values") {
		for _, k := range doc.Axes().ValueKeys {
			doc.RemoveValueKey(k)
		}
		for _, k := range valueKeys {
			if _, err := doc.AddValueKey(strings.TrimSpace(k)); err != nil {
				return err
			}
		}
	}

	if changed("sort") {
		if err := doc.SetSortOrder(models.SortOrder(sortOrder)); err != nil {
			return err
		}
	}
	if changed("range") {
		if err := doc.SetRangePercent(rangePercent); err != nil {
			return err
		}
	}

	t := doc.ViewOptions().Transforms
	if changed("normalize") {
		t.Normalize = normalize
	}
	if changed("cumulative") {
		t.Cumulative = cumulative
	}
	if changed("percentage") {
		t.Percentage = percentage
	}
	if changed("ma-window") {
		t.MovingAverage = models.MovingAverage{Enabled: maWindow > 0, Window: maWindow}
		if maWindow == 0 {
			t.MovingAverage.Window = models.DefaultMAWindow
		}
	}
	if err := doc.SetTransforms(t); err != nil {
		return err
	}

	fc := doc.Format()
	if changed("precision") {
		fc.Precision = precision
	}
	if changed("group-digits") {
		fc.GroupDigits = groupDigits
	}
	if changed("decimal-sep") {
		fc.DecimalSeparator = decimalSep
	}
	if changed("prefix") {
		fc.Prefix = prefix
	}
	if changed("suffix") {
		fc.Suffix = suffix
	}
	if err := doc.SetFormat(fc); err != nil {
		return err
	}

	st := doc.Style()
	if changed("title") {
		st.Title = title
	}
	if changed("plot-ma") {
		st.PlotMovingAverage = plotMA
	}
	return doc.SetStyle(st)
}

var formats = []string{"png", "svg", "csv", "xlsx", "json", "render-json", "yaml"}

// resolveFormat picks the export format from --format, then from the output
// file extension, then png.
func resolveFormat(format, path string) (string, error) {
	if format == "" && path != "" && path != "-" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if format == "yml" {
			format = "yaml"
		}
		if format == "" {
			format = "png"
		}
	}
	if format == "" {
		format = "png"
	}
	for _, f := range formats {
		if f == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("invalid format: %s (must be one of %s)", format, strings.Join(formats, ", "))
}

func defaultOutputPath(title, format string) string {
	switch format {
	case "csv":
		return output.DefaultFileName(title, "chart_data", ".csv")
	case "render-json":
		return output.DefaultFileName(title, "chart_view", ".json")
	default:
		return output.DefaultFileName(title, "chart", "."+format)
	}
}

func export(w io.Writer, doc *chartkit.Document, format, name string) error {
	switch format {
	case "png":
		return output.RenderPNG(w, doc.RenderInput())
	case "svg":
		return output.RenderSVG(w, doc.RenderInput())
	case "csv":
		return output.WriteCSV(w, doc.Dataset())
	case "xlsx":
		return output.WriteXLSX(w, doc.Dataset(), doc.RenderInput())
	case "json":
		s, err := output.ProjectToJSON(doc.Project(name), pretty)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s+"\n")
		return err
	case "render-json":
		s, err := output.RenderInputToJSON(doc.RenderInput(), pretty)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s+"\n")
		return err
	case "yaml":
		s, err := output.ConfigToYAML(doc.Config())
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	}
	return fmt.Errorf("%w: %s", chartkit.ErrUnsupportedFormat, format)
}

func inputName(args []string) string {
	if len(args) == 0 {
		if useSample {
			return "sample"
		}
		return "chart"
	}
	return filepath.Base(args[0])
}
