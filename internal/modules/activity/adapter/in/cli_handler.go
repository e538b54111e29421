package in

import (
	"context"

	"readlog/internal/modules/activity/dto"
	activityin "readlog/internal/modules/activity/port/in"
)

type CLIHandler struct {
	usecase activityin.Usecase
}

func NewCLIHandler(usecase activityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Year(ctx context.Context, year int) (dto.YearOutput, error) {
	return h.usecase.Year(ctx, year)
}

func (h CLIHandler) Summary(ctx context.Context, year int) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, year)
}

func (h CLIHandler) Genres(ctx context.Context, year, limit int) ([]dto.GenreCountOutput, error) {
	return h.usecase.Genres(ctx, year, limit)
}
