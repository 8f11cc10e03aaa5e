package faq

import "context"

// Store records query statistics. Failures are observable but never affect
// the answer returned to the caller.
type Store interface {
	IncrementQuery(ctx context.Context, canonical, display string) error
	IncrementFallback(ctx context.Context) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
}
