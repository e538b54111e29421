package out

import (
	"context"

	"readlog/internal/modules/render/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Render(ctx context.Context, manifest domain.Manifest, job domain.RenderJob) (domain.RenderResult, error)
}

// FrameSource supplies the finished books of a year in reading order,
// ready to hand to a renderer.
type FrameSource interface {
	Frames(ctx context.Context, year int) ([]domain.Frame, error)
}
