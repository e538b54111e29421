package out

import (
	"context"

	"readlog/internal/modules/library/domain"
)

type LibraryStore interface {
	Load(ctx context.Context) ([]domain.Book, []domain.Diagnostic, error)
}

type LibraryIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertBook(ctx context.Context, book domain.Book) error
}
