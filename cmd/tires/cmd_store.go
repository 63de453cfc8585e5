package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tires/internal/pipeline"
	"tires/internal/storage"
)

func newStoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "store <file>",
		Short: "Normalize a listing file and persist it as an import run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.processor().ProcessFile(args[0])
			if err != nil {
				return err
			}

			store, err := storage.Open(a.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.SaveRun(args[0], res.Records)
			if err != nil {
				return fmt.Errorf("save run: %w", err)
			}
			a.logger.Info("import run stored", zap.String("runId", run.ID), zap.Int("records", run.RowCount))
			fmt.Fprintf(cmd.OutOrStdout(), "stored run=%s rows=%d\n", run.ID, run.RowCount)
			return nil
		},
	}
}

func newRunsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored import runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Open(a.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(limit)
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"id", "source", "rows", "created"})
			table.SetAutoWrapText(false)
			for _, run := range runs {
				table.Append([]string{run.ID, run.Source, strconv.Itoa(run.RowCount), run.CreatedAt})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "max runs to list")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print the records of a stored import run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Open(a.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.ListRecords(args[0])
			if err != nil {
				return fmt.Errorf("load run %s: %w", args[0], err)
			}
			a.logger.Debug("run loaded", zap.String("runId", args[0]), zap.Int("records", len(records)))

			out := bufio.NewWriter(cmd.OutOrStdout())
			if err := pipeline.WriteRecords(out, records, format); err != nil {
				return err
			}
			return out.Flush()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatJSON, "json|yaml")
	return cmd
}
