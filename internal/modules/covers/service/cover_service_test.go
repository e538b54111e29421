package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	coversadapter "readlog/internal/modules/covers/adapter/out"
	"readlog/internal/modules/covers/service"

	coversout "readlog/internal/modules/covers/port/out"
	apperrors "readlog/internal/platform/errors"
)

type fakeTimeline struct {
	books []coversout.FinishedBook
}

func (f *fakeTimeline) FinishedBooks(context.Context, int) ([]coversout.FinishedBook, error) {
	return f.books, nil
}

type fakeLauncher struct {
	opened []string
}

func (f *fakeLauncher) Open(_ context.Context, target string) error {
	f.opened = append(f.opened, target)
	return nil
}

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func writeCover(t *testing.T, dir, bookID string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, bookID+".jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatalf("write cover: %v", err)
	}
}

func TestMissingForYearReportsLatestFinishPerBook(t *testing.T) {
	t.Parallel()
	coversDir := t.TempDir()
	writeCover(t, coversDir, "100")

	timeline := &fakeTimeline{books: []coversout.FinishedBook{
		{BookID: "100", Title: "Piranesi", Finish: day("2025-01-10")},
		{BookID: "101", Title: "Middlemarch", Finish: day("2025-02-01")},
		{BookID: "101", Title: "Middlemarch", Finish: day("2025-11-20")}, // reread
	}}
	svc := service.NewCoverService(coversadapter.NewDirResolver(coversDir), timeline, nil)

	missing, err := svc.MissingForYear(context.Background(), 2025)
	if err != nil {
		t.Fatalf("missing: %v", err)
	}
	if len(missing) != 1 {
		t.Fatalf("expected one missing cover, got %+v", missing)
	}
	got := missing[0]
	if got.BookID != "101" || !got.FinishDate.Equal(day("2025-11-20")) {
		t.Fatalf("reread book should report its latest finish: %+v", got)
	}
	if got.ExpectedPath != filepath.Join(coversDir, "101.jpg") {
		t.Fatalf("unexpected expected path: %s", got.ExpectedPath)
	}
}

func TestStatusDistinguishesMissing(t *testing.T) {
	t.Parallel()
	coversDir := t.TempDir()
	writeCover(t, coversDir, "100")
	svc := service.NewCoverService(coversadapter.NewDirResolver(coversDir), &fakeTimeline{}, nil)

	present, err := svc.Status(context.Background(), "100")
	if err != nil || !present.Present {
		t.Fatalf("expected present cover: %+v %v", present, err)
	}
	absent, err := svc.Status(context.Background(), "999")
	if err != nil {
		t.Fatalf("absent cover should not error: %v", err)
	}
	if absent.Present || absent.Path == "" {
		t.Fatalf("missing state should still carry the expected path: %+v", absent)
	}
}

func TestOpenLaunchesPresentCoverOnly(t *testing.T) {
	t.Parallel()
	coversDir := t.TempDir()
	writeCover(t, coversDir, "100")
	launcher := &fakeLauncher{}
	svc := service.NewCoverService(coversadapter.NewDirResolver(coversDir), &fakeTimeline{}, launcher)

	path, err := svc.Open(context.Background(), "100")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(launcher.opened) != 1 || launcher.opened[0] != path {
		t.Fatalf("launcher should receive the cover path: %+v", launcher.opened)
	}
	if _, err := svc.Open(context.Background(), "999"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("missing cover should be ErrNotFound, got %v", err)
	}
}
