package main

import (
	"bufio"

	"github.com/spf13/cobra"

	"tires/internal/pipeline"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Print normalized records for a listing file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.processor().ProcessFile(args[0])
			if err != nil {
				return err
			}
			out := bufio.NewWriter(cmd.OutOrStdout())
			if err := pipeline.WriteRecords(out, res.Records, format); err != nil {
				return err
			}
			return out.Flush()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatJSON, "json|yaml")
	return cmd
}
