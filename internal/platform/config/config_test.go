package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"readlog/internal/platform/config"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.CSVPath != filepath.Join(dir, "goodreads_library_export.csv") {
		t.Fatalf("unexpected csv path: %s", cfg.CSVPath)
	}
	if cfg.CoversDir != filepath.Join(dir, "book_covers") {
		t.Fatalf("unexpected covers dir: %s", cfg.CoversDir)
	}
	if cfg.DBPath != filepath.Join(dir, ".readlog", "readlog.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
}

func TestNewReadsFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	content := "csv: books.csv\ncovers_dir: /covers\nreader: Isabel\nyear: 2024\n"
	if err := os.WriteFile(filepath.Join(dir, "readlog.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.CSVPath != filepath.Join(dir, "books.csv") {
		t.Fatalf("relative csv should resolve against library dir, got %s", cfg.CSVPath)
	}
	if cfg.CoversDir != "/covers" {
		t.Fatalf("absolute covers dir should pass through, got %s", cfg.CoversDir)
	}
	if cfg.Reader != "Isabel" || cfg.Year != 2024 {
		t.Fatalf("unexpected reader/year: %s %d", cfg.Reader, cfg.Year)
	}
}

func TestNewFromFileExplicitPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	other := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(other, []byte("csv: export.csv\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.NewFromFile(dir, other)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.CSVPath != filepath.Join(dir, "export.csv") {
		t.Fatalf("csv from explicit config should resolve against library dir, got %s", cfg.CSVPath)
	}
	if _, err := config.NewFromFile(dir, filepath.Join(dir, "absent.yaml")); err == nil {
		t.Fatalf("missing explicit config should fail")
	}
}

func TestNewRejectsEmptyPathAndBadYAML(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty library path should fail")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readlog.yaml"), []byte(":bad"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("malformed yaml should fail")
	}
}
