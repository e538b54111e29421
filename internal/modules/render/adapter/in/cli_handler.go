package in

import (
	"context"

	"readlog/internal/modules/render/dto"
	renderin "readlog/internal/modules/render/port/in"
)

type CLIHandler struct {
	usecase renderin.Usecase
}

func NewCLIHandler(usecase renderin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.RendererInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Check(ctx context.Context) ([]dto.CheckResult, error) {
	return h.usecase.Check(ctx)
}

func (h CLIHandler) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	return h.usecase.Render(ctx, input)
}
