package in

import (
	"context"

	"readlog/internal/modules/render/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.RendererInfo, error)
	Check(ctx context.Context) ([]dto.CheckResult, error)
	Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error)
}
