package report_test

import (
	"strings"
	"testing"

	"reelscan/internal/extract"
	"reelscan/internal/report"
)

func TestBelowFiltersAndSortsAscending(t *testing.T) {
	titles := []extract.RatedTitle{
		{Title: "Middling", Rating: 5.9},
		{Title: "Good Movie", Rating: 8.0},
		{Title: "Bad Movie", Rating: 3.5},
	}

	low := report.Below(titles, 6.0)
	if len(low) != 2 {
		t.Fatalf("expected 2 titles below threshold, got %d", len(low))
	}
	if low[0].Title != "Bad Movie" || low[1].Title != "Middling" {
		t.Fatalf("unexpected order: %+v", low)
	}
}

func TestBelowExcludesExactThreshold(t *testing.T) {
	titles := []extract.RatedTitle{
		{Title: "Borderline", Rating: 6.0},
		{Title: "Under", Rating: 5.999},
	}

	low := report.Below(titles, 6.0)
	if len(low) != 1 || low[0].Title != "Under" {
		t.Fatalf("expected only the strictly lower title, got %+v", low)
	}
}

func TestBelowKeepsSourceOrderForTies(t *testing.T) {
	titles := []extract.RatedTitle{
		{Title: "Z Movie", Rating: 2.0},
		{Title: "A Movie", Rating: 2.0},
	}

	low := report.Below(titles, 6.0)
	if len(low) != 2 {
		t.Fatalf("expected 2 titles, got %d", len(low))
	}
	if low[0].Title != "Z Movie" || low[1].Title != "A Movie" {
		t.Fatalf("tie order not preserved: %+v", low)
	}
}

func TestWriteFormat(t *testing.T) {
	low := []extract.RatedTitle{
		{Title: "Bad Movie", Rating: 3.5},
		{Title: "Middling", Rating: 5.9},
	}

	var out strings.Builder
	if err := report.Write(&out, low, 6.0); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	want := "\nSample of movies < 6.0 (2 total):\n3.5: Bad Movie\n5.9: Middling\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\ngot  %q\nwant %q", out.String(), want)
	}
}

func TestWriteEmpty(t *testing.T) {
	var out strings.Builder
	if err := report.Write(&out, nil, 6.0); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	want := "\nSample of movies < 6.0 (0 total):\n"
	if out.String() != want {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestWriteIsByteStable(t *testing.T) {
	low := []extract.RatedTitle{{Title: "Bad Movie", Rating: 3.5}}

	var first, second strings.Builder
	if err := report.Write(&first, low, 6.0); err != nil {
		t.Fatalf("first Write returned error: %v", err)
	}
	if err := report.Write(&second, low, 6.0); err != nil {
		t.Fatalf("second Write returned error: %v", err)
	}
	if first.String() != second.String() {
		t.Fatal("expected identical output across runs")
	}
}

func TestFormatRating(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{2, "2.0"},
		{3.5, "3.5"},
		{7.25, "7.25"},
		{0, "0.0"},
	}
	for _, tc := range cases {
		if got := report.FormatRating(tc.value); got != tc.want {
			t.Fatalf("FormatRating(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
