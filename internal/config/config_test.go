package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"reelscan/internal/config"
)

func TestLoadDefaultsWithEnvTMDBKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Scan.Source != "data/movies.js" {
		t.Fatalf("unexpected scan source: %q", cfg.Scan.Source)
	}
	if cfg.Scan.Threshold != 6.0 {
		t.Fatalf("unexpected threshold: %v", cfg.Scan.Threshold)
	}
	if !cfg.Catalog.Enabled {
		t.Fatal("expected catalog enabled by default")
	}
	wantLogDir := filepath.Join(tempHome, ".local", "share", "reelscan", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.TMDB.APIKey != "test-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != config.Default().TMDB.BaseURL {
		t.Fatalf("unexpected TMDB base url: %q", cfg.TMDB.BaseURL)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, cfg.Paths.CatalogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "reelscan.toml")

	contents := `
[scan]
source = "dumps/catalog.js"
threshold = 4.5

[catalog]
enabled = false

[logging]
format = "JSON"
level = "DEBUG"
`
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: exists=%v path=%q", exists, resolved)
	}
	if cfg.Scan.Source != "dumps/catalog.js" {
		t.Fatalf("unexpected scan source: %q", cfg.Scan.Source)
	}
	if cfg.Scan.Threshold != 4.5 {
		t.Fatalf("unexpected threshold: %v", cfg.Scan.Threshold)
	}
	if cfg.Catalog.Enabled {
		t.Fatal("expected catalog disabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging values to be lowercased: %+v", cfg.Logging)
	}
}

func TestLoadExpandsTildeSource(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "reelscan.toml")
	if err := os.WriteFile(configPath, []byte("[scan]\nsource = \"~/dumps/movies.js\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := filepath.Join(tempHome, "dumps", "movies.js")
	if cfg.Scan.Source != want {
		t.Fatalf("unexpected source: got %q want %q", cfg.Scan.Source, want)
	}
}

func TestValidateRejectsEmptySource(t *testing.T) {
	cfg := config.Default()
	cfg.Scan.Source = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty scan source")
	}
}
