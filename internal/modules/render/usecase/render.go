package usecase

import (
	"context"

	"readlog/internal/modules/render/dto"
	renderin "readlog/internal/modules/render/port/in"
	"readlog/internal/modules/render/service"
)

type Interactor struct {
	svc *service.RenderService
}

func NewInteractor(svc *service.RenderService) renderin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.RendererInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Check(ctx context.Context) ([]dto.CheckResult, error) {
	return i.svc.Check(ctx)
}

func (i *Interactor) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	return i.svc.Render(ctx, input)
}
