package in

import (
	"context"

	"readlog/internal/modules/covers/dto"
	coversin "readlog/internal/modules/covers/port/in"
)

type CLIHandler struct {
	usecase coversin.Usecase
}

func NewCLIHandler(usecase coversin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context, bookID string) (dto.CoverStatusOutput, error) {
	return h.usecase.Status(ctx, bookID)
}

func (h CLIHandler) Missing(ctx context.Context, year int) ([]dto.MissingCoverOutput, error) {
	return h.usecase.Missing(ctx, year)
}

func (h CLIHandler) Open(ctx context.Context, bookID string) (string, error) {
	return h.usecase.Open(ctx, bookID)
}
