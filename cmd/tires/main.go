package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tires/internal/config"
	"tires/internal/logging"
	"tires/internal/observability"
	"tires/internal/pipeline"
)

// app carries what the subcommands share. It is filled in PersistentPreRunE.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tires",
		Short:         "Normalize tire product listings into structured records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if a.verbose {
				level = "debug"
			}
			logger, err := logging.New(level)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			a.metrics = observability.NewMetrics()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = a.logger.Sync() }()
			if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newNormalizeCmd(a),
		newExportXLSXCmd(a),
		newStoreCmd(a),
		newRunsCmd(a),
		newShowCmd(a),
	)
	return root
}

func (a *app) processor() *pipeline.ProcessingService {
	return pipeline.NewProcessingService(pipeline.ReadOptions{Delimiter: a.cfg.CSVDelimiter}, a.logger, a.metrics)
}
