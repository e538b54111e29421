package in

import (
	"context"

	"readlog/internal/modules/covers/dto"
)

type Usecase interface {
	Status(ctx context.Context, bookID string) (dto.CoverStatusOutput, error)
	Missing(ctx context.Context, year int) ([]dto.MissingCoverOutput, error)
	Open(ctx context.Context, bookID string) (string, error)
}
