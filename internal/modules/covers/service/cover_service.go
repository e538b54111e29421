package service

import (
	"context"

	"readlog/internal/modules/covers/domain"
	coversout "readlog/internal/modules/covers/port/out"
	apperrors "readlog/internal/platform/errors"
)

type CoverService struct {
	resolver coversout.Resolver
	timeline coversout.Timeline
	launcher coversout.ExternalLauncher
}

func NewCoverService(resolver coversout.Resolver, timeline coversout.Timeline, launcher coversout.ExternalLauncher) *CoverService {
	return &CoverService{resolver: resolver, timeline: timeline, launcher: launcher}
}

func (s *CoverService) Status(ctx context.Context, bookID string) (domain.CoverStatus, error) {
	return s.resolver.Resolve(ctx, bookID)
}

// MissingForYear reports books finished in the year that have no cover art,
// one entry per book keyed by its latest qualifying finish.
func (s *CoverService) MissingForYear(ctx context.Context, year int) ([]domain.MissingCover, error) {
	finished, err := s.timeline.FinishedBooks(ctx, year)
	if err != nil {
		return nil, err
	}

	// The timeline is chronological, so the last occurrence of a book is
	// its latest finish.
	latest := map[string]coversout.FinishedBook{}
	var order []string
	for _, book := range finished {
		if _, seen := latest[book.BookID]; !seen {
			order = append(order, book.BookID)
		}
		latest[book.BookID] = book
	}

	var missing []domain.MissingCover
	for _, id := range order {
		book := latest[id]
		status, err := s.resolver.Resolve(ctx, id)
		if err != nil {
			return nil, err
		}
		if status.Present {
			continue
		}
		missing = append(missing, domain.MissingCover{
			BookID:       book.BookID,
			Title:        book.Title,
			Author:       book.Author,
			FinishDate:   book.Finish,
			ExpectedPath: status.Path,
		})
	}
	return missing, nil
}

func (s *CoverService) Open(ctx context.Context, bookID string) (string, error) {
	status, err := s.resolver.Resolve(ctx, bookID)
	if err != nil {
		return "", err
	}
	if !status.Present {
		return "", apperrors.ErrNotFound
	}
	if s.launcher == nil {
		return "", apperrors.ErrInvalidInput
	}
	if err := s.launcher.Open(ctx, status.Path); err != nil {
		return "", err
	}
	return status.Path, nil
}
