package extract

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// RatedTitle pairs a movie title with its vote average as found in the
// source text.
type RatedTitle struct {
	Title  string
	Rating float64
}

// fieldPattern pairs each "title" field with the first "vote_average" that
// follows it. (?s) lets the gap span line breaks; both gaps use shortest
// match so fields are never skipped over.
var fieldPattern = regexp.MustCompile(`(?s)"title": "(.*?)".*?"vote_average": ([0-9.]+)`)

// ScanFile reads the whole file at path and extracts every rated title.
func ScanFile(path string) ([]RatedTitle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return Scan(string(data))
}

// Scan extracts rated titles from content in source order. A captured
// rating that does not parse as a float is fatal; no partial results are
// returned.
func Scan(content string) ([]RatedTitle, error) {
	matches := fieldPattern.FindAllStringSubmatch(content, -1)
	titles := make([]RatedTitle, 0, len(matches))
	for _, match := range matches {
		rating, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			return nil, fmt.Errorf("parse rating %q for title %q: %w", match[2], match[1], err)
		}
		titles = append(titles, RatedTitle{Title: match[1], Rating: rating})
	}
	return titles, nil
}
