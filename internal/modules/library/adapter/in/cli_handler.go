package in

import (
	"context"

	"readlog/internal/modules/library/dto"
	libraryin "readlog/internal/modules/library/port/in"
)

type CLIHandler struct {
	usecase libraryin.Usecase
}

func NewCLIHandler(usecase libraryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) (dto.LoadOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) Diagnostics(ctx context.Context) ([]dto.DiagnosticOutput, error) {
	out, err := h.usecase.Load(ctx)
	if err != nil {
		return nil, err
	}
	return out.Diagnostics, nil
}

func (h CLIHandler) Reindex(ctx context.Context) (dto.ReindexOutput, error) {
	return h.usecase.Reindex(ctx)
}
