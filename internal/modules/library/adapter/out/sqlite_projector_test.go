package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	libraryout "readlog/internal/modules/library/adapter/out"
	"readlog/internal/modules/library/domain"
)

func TestProjectorCreatesNothingUntilFirstProjection(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, ".readlog", "readlog.db")
	projector := libraryout.NewSQLiteLibraryProjector(dbPath)

	// Read-only commands construct the projector without projecting; they
	// must not leave a .readlog directory behind.
	if _, err := os.Stat(filepath.Dir(dbPath)); !os.IsNotExist(err) {
		t.Fatalf("constructing the projector must not touch the filesystem, stat: %v", err)
	}

	if err := projector.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if err := projector.UpsertBook(context.Background(), domain.Book{ID: "100", Title: "Piranesi", Row: 1}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("first projection call should create the database: %v", err)
	}
}
