package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartkit-go/internal/editor"
	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/output"
)

var (
	embedTitle  string
	embedOrigin string
	samplePath  string
	saveConfig  string
)

func newColumnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns [input.csv|input.xlsx]",
		Short: "List columns and how they are plotted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}
			axes := doc.Axes()
			ds := doc.Dataset()
			out := cmd.OutOrStdout()
			for _, c := range ds.Columns {
				role := ""
				switch {
				case c == axes.CategoryKey:
					role = "x"
				case axes.HasValueKey(c):
					role = "y"
				}
				kind := "text"
				if ds.IsNumericColumn(c) {
					kind = "number"
				}
				fmt.Fprintf(out, "%-2s %-24s %s\n", role, c, kind)
			}
			if avail := doc.AvailableColumns(); len(avail) > 0 {
				fmt.Fprintf(out, "\navailable: %s\n", strings.Join(avail, ", "))
			}
			return nil
		},
	}
	addLoadFlags(cmd)
	return cmd
}

func newEmbedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Print an iframe snippet for embedding a chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), output.EmbedCode(embedOrigin, embedTitle))
			return nil
		},
	}
	cmd.Flags().StringVar(&embedTitle, "title", "", "Chart title")
	cmd.Flags().StringVar(&embedOrigin, "origin", "http://localhost:3000", "Origin serving the embedded chart")
	return cmd
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in business sample as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := chartkit.SampleBusinessDataset()
			if samplePath == "" || samplePath == "-" {
				return output.WriteCSV(cmd.OutOrStdout(), ds)
			}
			f, err := os.Create(samplePath)
			if err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			if err := output.WriteCSV(f, ds); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&samplePath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [input.csv|input.xlsx]",
		Short: "Edit data and chart settings in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}
			opts := editor.Options{
				DataPath:   editDataPath(args),
				ConfigPath: saveConfig,
			}
			if opts.ConfigPath == "" {
				opts.ConfigPath = configPath
			}
			return editor.Run(doc, opts)
		},
	}
	addLoadFlags(cmd)
	cmd.Flags().StringVar(&saveConfig, "save-config", "", "Write the chart configuration here on save (default: --config)")
	return cmd
}

// editDataPath is where the editor saves: the input itself for CSV files,
// otherwise a CSV next to it.
func editDataPath(args []string) string {
	if len(args) == 0 {
		if useSample {
			return "sample.csv"
		}
		return output.DefaultFileName("", "chart_data", ".csv")
	}
	in := args[0]
	ext := filepath.Ext(in)
	if strings.EqualFold(ext, ".csv") {
		return in
	}
	return strings.TrimSuffix(in, ext) + ".csv"
}
