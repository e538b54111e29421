package out

import (
	"context"

	"readlog/internal/modules/activity/domain"
)

// LibrarySource feeds the aggregations. Implementations flatten the loaded
// library into finished sessions in export order.
type LibrarySource interface {
	FinishedSessions(ctx context.Context) ([]domain.Session, error)
	BookGenres(ctx context.Context) ([]domain.BookGenres, error)
}
