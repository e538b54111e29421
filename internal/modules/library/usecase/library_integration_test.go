package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	libraryout "readlog/internal/modules/library/adapter/out"
	"readlog/internal/modules/library/service"
	"readlog/internal/modules/library/usecase"
	apperrors "readlog/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const sampleExport = `Book Id,Title,Author,read_dates,genres
100,Piranesi,Susanna Clarke,"2024-10-01,2024-10-21","Fantasy:1200"
101,Middlemarch,George Eliot,"2024-01-05,2024-02-28;,2024-12-30",
102,Bad Dates,Another Author,"2025-13-40,2025-03-10",
`

func newUsecase(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "goodreads_library_export.csv")
	if err := os.WriteFile(csvPath, []byte(sampleExport), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return csvPath, filepath.Join(dir, ".readlog", "readlog.db")
}

func TestLoadGetAndReindex(t *testing.T) {
	t.Parallel()
	csvPath, dbPath := newUsecase(t)
	projector := libraryout.NewSQLiteLibraryProjector(dbPath)
	uc := usecase.NewInteractor(service.NewLibraryService(libraryout.NewCSVLibraryStore(csvPath), projector))

	out, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out.Books) != 3 {
		t.Fatalf("expected 3 books, got %d", len(out.Books))
	}
	if len(out.Diagnostics) != 1 || out.Diagnostics[0].BookID != "102" {
		t.Fatalf("unexpected diagnostics: %+v", out.Diagnostics)
	}

	again, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !reflect.DeepEqual(out, again) {
		t.Fatalf("loading twice should be idempotent")
	}

	book, err := uc.GetBook(context.Background(), "101")
	if err != nil {
		t.Fatalf("get book: %v", err)
	}
	if len(book.Sessions) != 2 {
		t.Fatalf("expected two sessions for reread book, got %d", len(book.Sessions))
	}
	if _, err := uc.GetBook(context.Background(), "999"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown book should be ErrNotFound, got %v", err)
	}

	reindexed, err := uc.Reindex(context.Background())
	if err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if reindexed.Books != 3 {
		t.Fatalf("expected 3 reindexed books, got %d", reindexed.Books)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var sessions int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&sessions); err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if sessions != 3 {
		t.Fatalf("expected 3 projected sessions, got %d", sessions)
	}
	var genres int
	if err := db.QueryRow(`SELECT COUNT(*) FROM genres WHERE book_id = '100'`).Scan(&genres); err != nil {
		t.Fatalf("count genres: %v", err)
	}
	if genres != 1 {
		t.Fatalf("expected one projected genre, got %d", genres)
	}
}
