package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tires/internal/pipeline"
)

func newExportXLSXCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export:xlsx <file>",
		Short: "Write normalized records to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.processor().ProcessFile(args[0])
			if err != nil {
				return err
			}
			target := out
			if strings.TrimSpace(target) == "" {
				target = defaultExportPath(a.cfg.OutputDir, args[0])
			}
			if err := pipeline.ExportRecordsToXLSX(res.Records, target); err != nil {
				return err
			}
			a.logger.Info("records exported", zap.String("output", target), zap.Int("records", len(res.Records)))
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d rows to %s\n", len(res.Records), target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output xlsx path (default $TIRES_OUTPUT_DIR/<input>.xlsx)")
	return cmd
}

func defaultExportPath(outputDir, input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if base == "" || base == "." {
		base = "tires"
	}
	return filepath.Join(outputDir, base+".xlsx")
}
