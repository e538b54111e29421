package service

import (
	"context"

	"readlog/internal/modules/activity/domain"
	activityout "readlog/internal/modules/activity/port/out"
)

type ActivityService struct {
	source activityout.LibrarySource
}

func NewActivityService(source activityout.LibrarySource) *ActivityService {
	return &ActivityService{source: source}
}

// YearSessions returns the qualifying sessions for a year with reread
// numbers already assigned over the whole library.
func (s *ActivityService) YearSessions(ctx context.Context, year int) ([]domain.Session, error) {
	all, err := s.source.FinishedSessions(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterYear(domain.NumberRereads(all), year), nil
}

func (s *ActivityService) Summary(ctx context.Context, year int) (domain.Summary, error) {
	sessions, err := s.YearSessions(ctx, year)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(year, sessions), nil
}

// Genres aggregates genre votes over the books with at least one qualifying
// session in the year.
func (s *ActivityService) Genres(ctx context.Context, year int) ([]domain.GenreCount, error) {
	sessions, err := s.YearSessions(ctx, year)
	if err != nil {
		return nil, err
	}
	qualifying := map[string]bool{}
	for _, session := range sessions {
		qualifying[session.BookID] = true
	}

	books, err := s.source.BookGenres(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.BookGenres, 0, len(books))
	for _, book := range books {
		if qualifying[book.BookID] {
			matched = append(matched, book)
		}
	}
	return domain.GenreDistribution(matched), nil
}
