package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"readlog/internal/modules/activity/domain"
	"readlog/internal/modules/activity/dto"
	activityin "readlog/internal/modules/activity/port/in"
	"readlog/internal/modules/activity/service"
)

type Interactor struct {
	svc *service.ActivityService
}

func NewInteractor(svc *service.ActivityService) activityin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Year(ctx context.Context, year int) (dto.YearOutput, error) {
	if year <= 0 {
		return dto.YearOutput{}, fmt.Errorf("year must be positive, got %d", year)
	}
	sessions, err := i.svc.YearSessions(ctx, year)
	if err != nil {
		return dto.YearOutput{}, err
	}

	out := dto.YearOutput{Year: year}
	for _, session := range domain.Chronological(sessions) {
		out.Entries = append(out.Entries, toEntryOutput(session))
	}

	counts := domain.DayCounts(sessions)
	out.Days = make([]dto.DayCountOutput, 0, len(counts))
	for date, count := range counts {
		out.Days = append(out.Days, dto.DayCountOutput{Date: date, Count: count})
	}
	sort.Slice(out.Days, func(a, b int) bool { return out.Days[a].Date.Before(out.Days[b].Date) })

	for month, bucket := range domain.MonthBuckets(sessions) {
		entries := make([]dto.EntryOutput, 0, len(bucket))
		for _, session := range bucket {
			entries = append(entries, toEntryOutput(session))
		}
		out.Months = append(out.Months, dto.MonthOutput{Month: time.Month(month + 1), Entries: entries})
	}
	return out, nil
}

func (i *Interactor) Summary(ctx context.Context, year int) (dto.SummaryOutput, error) {
	if year <= 0 {
		return dto.SummaryOutput{}, fmt.Errorf("year must be positive, got %d", year)
	}
	summary, err := i.svc.Summary(ctx, year)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	out := dto.SummaryOutput{
		Year:             summary.Year,
		TotalSessions:    summary.TotalSessions,
		UniqueBooks:      summary.UniqueBooks,
		RereadBooks:      summary.RereadBooks,
		ActiveDays:       summary.ActiveDays,
		MaxPerDay:        summary.MaxPerDay,
		AveragePerActive: summary.AveragePerActive,
	}
	for _, busy := range summary.BusiestDays {
		out.BusiestDays = append(out.BusiestDays, dto.DayCountOutput{Date: busy.Date, Count: busy.Count})
	}
	return out, nil
}

func (i *Interactor) Genres(ctx context.Context, year, limit int) ([]dto.GenreCountOutput, error) {
	if year <= 0 {
		return nil, fmt.Errorf("year must be positive, got %d", year)
	}
	genres, err := i.svc.Genres(ctx, year)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(genres) > limit {
		genres = genres[:limit]
	}
	out := make([]dto.GenreCountOutput, 0, len(genres))
	for _, genre := range genres {
		out = append(out, dto.GenreCountOutput{Genre: genre.Genre, Votes: genre.Votes, Books: genre.Books})
	}
	return out, nil
}

func toEntryOutput(session domain.Session) dto.EntryOutput {
	return dto.EntryOutput{
		BookID:     session.BookID,
		Title:      session.Title,
		Author:     session.Author,
		Row:        session.Row,
		Start:      session.Start,
		Finish:     session.Finish,
		ReadNumber: session.ReadNumber,
		TotalReads: session.TotalReads,
	}
}
