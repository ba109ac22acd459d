package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"reelscan/internal/extract"
	"reelscan/internal/report"
)

func newTitlesCommand(ctx *commandContext) *cobra.Command {
	var below float64
	var limit int
	var sortBy string

	cmd := &cobra.Command{
		Use:   "titles [source]",
		Short: "List every rated title found in a dump",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source := cfg.Scan.Source
			if len(args) == 1 {
				source = args[0]
			}

			titles, err := extract.ScanFile(source)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("below") {
				titles = report.Below(titles, below)
			}

			switch sortBy {
			case "rating":
				sort.SliceStable(titles, func(i, j int) bool {
					return titles[i].Rating < titles[j].Rating
				})
			case "title":
				collator := collate.New(language.Make(cfg.TMDB.Language))
				sort.SliceStable(titles, func(i, j int) bool {
					return collator.CompareString(titles[i].Title, titles[j].Title) < 0
				})
			default:
				return fmt.Errorf("unknown sort %q (use rating or title)", sortBy)
			}

			if limit > 0 && len(titles) > limit {
				titles = titles[:limit]
			}

			rows := make([][]string, 0, len(titles))
			for _, title := range titles {
				rows = append(rows, []string{report.FormatRating(title.Rating), title.Title})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"RATING", "TITLE"}, rows, []columnAlignment{alignRight, alignLeft}))
			fmt.Fprintf(out, "%d titles\n", len(titles))
			return nil
		},
	}

	cmd.Flags().Float64Var(&below, "below", 0, "Only include titles rated strictly below this value")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows to print (0 = all)")
	cmd.Flags().StringVar(&sortBy, "sort", "rating", "Sort order: rating or title")
	return cmd
}
