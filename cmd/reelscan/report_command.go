package main

import (
	"context"

	"github.com/spf13/cobra"

	"reelscan/internal/catalog"
	"reelscan/internal/config"
	"reelscan/internal/extract"
	"reelscan/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var thresholdFlag float64

	cmd := &cobra.Command{
		Use:   "report [source]",
		Short: "Print titles rated below the threshold",
		Long: `Scan a metadata dump for "title" / "vote_average" pairs and print every
title rated strictly below the threshold, ascending by rating. Without an
argument the configured scan source is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source := cfg.Scan.Source
			if len(args) == 1 {
				source = args[0]
			}
			threshold := cfg.Scan.Threshold
			if cmd.Flags().Changed("threshold") {
				threshold = thresholdFlag
			}

			titles, err := extract.ScanFile(source)
			if err != nil {
				return err
			}
			low := report.Below(titles, threshold)
			if err := report.Write(cmd.OutOrStdout(), low, threshold); err != nil {
				return err
			}

			recordRun(cmd.Context(), ctx, cfg, catalog.Run{
				SourcePath:     source,
				Threshold:      threshold,
				TotalTitles:    len(titles),
				BelowThreshold: len(low),
			})
			return nil
		},
	}

	cmd.Flags().Float64VarP(&thresholdFlag, "threshold", "t", 6.0, "Report titles rated strictly below this value")
	return cmd
}

// recordRun appends the run to the catalog when enabled. History is a
// convenience, so failures are logged rather than surfaced.
func recordRun(ctx context.Context, cctx *commandContext, cfg *config.Config, run catalog.Run) {
	if cfg == nil || !cfg.Catalog.Enabled {
		return
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		cctx.ensureLogger().Warn("open catalog", "error", err)
		return
	}
	defer store.Close()
	if _, err := store.RecordRun(ctx, run); err != nil {
		cctx.ensureLogger().Warn("record scan run", "error", err)
	}
}
