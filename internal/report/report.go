package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"reelscan/internal/extract"
)

// Below returns the titles rated strictly below threshold, ascending by
// rating. The sort is stable so equally rated titles keep source order.
func Below(titles []extract.RatedTitle, threshold float64) []extract.RatedTitle {
	low := make([]extract.RatedTitle, 0, len(titles))
	for _, title := range titles {
		if title.Rating < threshold {
			low = append(low, title)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Rating < low[j].Rating
	})
	return low
}

// Write renders the low-rating report: a blank line, a summary line with
// the threshold and count, then one "<rating>: <title>" line per entry.
func Write(w io.Writer, low []extract.RatedTitle, threshold float64) error {
	if _, err := fmt.Fprintf(w, "\nSample of movies < %s (%d total):\n", FormatRating(threshold), len(low)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	for _, title := range low {
		if _, err := fmt.Fprintf(w, "%s: %s\n", FormatRating(title.Rating), title.Title); err != nil {
			return fmt.Errorf("write entry: %w", err)
		}
	}
	return nil
}

// FormatRating renders a rating with the fewest digits that round-trip,
// keeping a trailing .0 on whole numbers so 2 prints as "2.0".
func FormatRating(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.ContainsAny(formatted, ".eE") {
		formatted += ".0"
	}
	return formatted
}
