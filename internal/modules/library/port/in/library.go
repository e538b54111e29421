package in

import (
	"context"

	"readlog/internal/modules/library/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.LoadOutput, error)
	GetBook(ctx context.Context, id string) (dto.BookOutput, error)
	Reindex(ctx context.Context) (dto.ReindexOutput, error)
}
