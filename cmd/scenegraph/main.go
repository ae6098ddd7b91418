package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	format     string
	caseFormat string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "scenegraph",
	Short: "Export and inspect YAML scene descriptions",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export scene as xml or json",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var boundsCmd = &cobra.Command{
	Use:   "bounds FILE",
	Short: "Print scene bounding box",
	Args:  cobra.ExactArgs(1),
	RunE:  runBounds,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Print scene outline",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	exportCmd.Flags().StringVarP(&format, "format", "f", "xml", "Export format: xml or json")
	exportCmd.Flags().StringVar(&caseFormat, "case", "", "Attribute case format, e.g. lu, uc, ld")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(boundsCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
