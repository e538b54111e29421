package out

import (
	"context"

	"readlog/internal/modules/covers/domain"
)

// Resolver maps a book id to cover art. Cover acquisition (scraping,
// downloads) lives outside this tool; the resolver only answers presence.
type Resolver interface {
	Resolve(ctx context.Context, bookID string) (domain.CoverStatus, error)
}

// ExternalLauncher opens a resolved cover in the OS image viewer.
type ExternalLauncher interface {
	Open(ctx context.Context, target string) error
}
