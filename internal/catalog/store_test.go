package catalog_test

import (
	"context"
	"testing"
	"time"

	"reelscan/internal/catalog"
	"reelscan/internal/testsupport"
)

func TestStoreRecordsAndListsRuns(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	first, err := store.RecordRun(ctx, catalog.Run{
		SourcePath:     "data/movies.js",
		Threshold:      6.0,
		TotalTitles:    40,
		BelowThreshold: 7,
		CreatedAt:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated run ID")
	}

	second, err := store.RecordRun(ctx, catalog.Run{
		SourcePath:     "data/movies.js",
		Threshold:      5.0,
		TotalTitles:    40,
		BelowThreshold: 3,
		CreatedAt:      time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Fatalf("expected newest-first order, got %v then %v", runs[0].ID, runs[1].ID)
	}
	if runs[0].Threshold != 5.0 || runs[0].BelowThreshold != 3 {
		t.Fatalf("run fields did not round-trip: %+v", runs[0])
	}
	if !runs[1].CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("timestamp did not round-trip: got %v want %v", runs[1].CreatedAt, first.CreatedAt)
	}
}

func TestOpenRejectsSecondWriter(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer store.Close()

	if _, err := catalog.Open(cfg); err == nil {
		t.Fatal("expected second Open to fail while lock is held")
	}
}

func TestReopenAfterClose(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, err := store.RecordRun(context.Background(), catalog.Run{SourcePath: "a.js", Threshold: 6.0}); err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected recorded run to survive reopen, got %d", len(runs))
	}
}
