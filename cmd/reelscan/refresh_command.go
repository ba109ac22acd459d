package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"reelscan/internal/extract"
	"reelscan/internal/report"
	"reelscan/internal/tmdb"
)

func newRefreshCommand(ctx *commandContext) *cobra.Command {
	var thresholdFlag float64
	var limit int

	cmd := &cobra.Command{
		Use:   "refresh [source]",
		Short: "Compare low-rated titles against current TMDB vote averages",
		Long: `Look up each low-rated title on The Movie Database and show the locally
extracted rating next to the current vote average, so stale dumps are easy
to spot. Requires tmdb.api_key (or TMDB_API_KEY).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.TMDB.APIKey == "" {
				return errors.New("tmdb.api_key is required for refresh. Set TMDB_API_KEY or edit the config file (create one with 'reelscan config init')")
			}

			client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
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
			if limit > 0 && len(low) > limit {
				low = low[:limit]
			}

			logger := ctx.ensureLogger()
			rows := make([][]string, 0, len(low))
			for _, title := range low {
				resp, err := client.SearchMovie(cmd.Context(), title.Title)
				if err != nil {
					return fmt.Errorf("search %q: %w", title.Title, err)
				}
				current := "-"
				if len(resp.Results) > 0 {
					current = report.FormatRating(resp.Results[0].VoteAverage)
				} else {
					logger.Warn("no tmdb match", "title", title.Title)
				}
				rows = append(rows, []string{title.Title, report.FormatRating(title.Rating), current})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"TITLE", "LOCAL", "TMDB"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&thresholdFlag, "threshold", "t", 6.0, "Look up titles rated strictly below this value")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum titles to look up (0 = all)")
	return cmd
}
