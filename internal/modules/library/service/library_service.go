package service

import (
	"context"
	"sort"

	"readlog/internal/modules/library/domain"
	libraryout "readlog/internal/modules/library/port/out"
)

type LibraryService struct {
	store     libraryout.LibraryStore
	projector libraryout.LibraryIndexProjector
}

func NewLibraryService(store libraryout.LibraryStore, projector libraryout.LibraryIndexProjector) *LibraryService {
	return &LibraryService{store: store, projector: projector}
}

// Load reads the export once. Diagnostics come back sorted by row then
// segment so repeated runs print identically.
func (s *LibraryService) Load(ctx context.Context) ([]domain.Book, []domain.Diagnostic, error) {
	books, diagnostics, err := s.store.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	sort.SliceStable(diagnostics, func(i, j int) bool {
		if diagnostics[i].Row != diagnostics[j].Row {
			return diagnostics[i].Row < diagnostics[j].Row
		}
		return diagnostics[i].Segment < diagnostics[j].Segment
	})
	return books, diagnostics, nil
}

func (s *LibraryService) FindBook(ctx context.Context, id string) (domain.Book, bool, error) {
	books, _, err := s.Load(ctx)
	if err != nil {
		return domain.Book{}, false, err
	}
	for _, book := range books {
		if book.ID == id {
			return book, true, nil
		}
	}
	return domain.Book{}, false, nil
}

// Reindex rebuilds the sqlite projection from the export.
func (s *LibraryService) Reindex(ctx context.Context) (int, error) {
	books, _, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.projector.Reset(ctx); err != nil {
		return 0, err
	}
	for _, book := range books {
		if err := s.projector.UpsertBook(ctx, book); err != nil {
			return 0, err
		}
	}
	return len(books), nil
}
