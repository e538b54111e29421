package in

import (
	"context"

	"readlog/internal/modules/activity/dto"
)

type Usecase interface {
	Year(ctx context.Context, year int) (dto.YearOutput, error)
	Summary(ctx context.Context, year int) (dto.SummaryOutput, error)
	Genres(ctx context.Context, year, limit int) ([]dto.GenreCountOutput, error)
}
