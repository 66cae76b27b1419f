// Package main provides the CLI entry point for chartkit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartkit-go/internal/logging"
)

var (
	logFile  string
	logLevel string

	logCleanup = func() {}
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chartkit",
		Short: "Turn tabular data into line charts",
		Long: `chartkit loads CSV or Excel data, derives chart series (sorting, range
windows, normalization, running totals, percentages, moving averages) and
exports them as PNG, SVG, CSV, XLSX, JSON or YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetLevel(logLevel)
			if _, ok := logging.ParseLevel(logLevel); !ok {
				return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", logLevel)
			}
			setup := logging.Setup
			if cmd.Name() == "edit" {
				setup = logging.SetupTUI
			}
			cleanup, err := setup(logFile)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			logCleanup = cleanup
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logCleanup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newRenderCmd(),
		newColumnsCmd(),
		newEmbedCmd(),
		newSampleCmd(),
		newEditCmd(),
	)
	return rootCmd
}
