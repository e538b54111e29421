package usecase

import (
	"context"
	"fmt"

	"readlog/internal/modules/covers/dto"
	coversin "readlog/internal/modules/covers/port/in"
	"readlog/internal/modules/covers/service"
)

type Interactor struct {
	svc *service.CoverService
}

func NewInteractor(svc *service.CoverService) coversin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Status(ctx context.Context, bookID string) (dto.CoverStatusOutput, error) {
	status, err := i.svc.Status(ctx, bookID)
	if err != nil {
		return dto.CoverStatusOutput{}, err
	}
	return dto.CoverStatusOutput{BookID: status.BookID, Present: status.Present, Path: status.Path}, nil
}

func (i *Interactor) Missing(ctx context.Context, year int) ([]dto.MissingCoverOutput, error) {
	if year <= 0 {
		return nil, fmt.Errorf("year must be positive, got %d", year)
	}
	missing, err := i.svc.MissingForYear(ctx, year)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MissingCoverOutput, 0, len(missing))
	for _, cover := range missing {
		out = append(out, dto.MissingCoverOutput{
			BookID:       cover.BookID,
			Title:        cover.Title,
			Author:       cover.Author,
			FinishDate:   cover.FinishDate,
			ExpectedPath: cover.ExpectedPath,
		})
	}
	return out, nil
}

func (i *Interactor) Open(ctx context.Context, bookID string) (string, error) {
	return i.svc.Open(ctx, bookID)
}
