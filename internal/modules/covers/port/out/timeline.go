package out

import (
	"context"
	"time"
)

// FinishedBook is one qualifying reading event seen from the covers side.
type FinishedBook struct {
	BookID string
	Title  string
	Author string
	Finish time.Time
}

// Timeline supplies the year's qualifying events; implementations must not
// re-derive year membership themselves.
type Timeline interface {
	FinishedBooks(ctx context.Context, year int) ([]FinishedBook, error)
}
