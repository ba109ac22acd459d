package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reelscan/internal/catalog"
	"reelscan/internal/report"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scan runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := catalog.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No scan runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					run.SourcePath,
					report.FormatRating(run.Threshold),
					strconv.Itoa(run.TotalTitles),
					strconv.Itoa(run.BelowThreshold),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"WHEN", "SOURCE", "THRESHOLD", "TITLES", "BELOW"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to show")
	return cmd
}
