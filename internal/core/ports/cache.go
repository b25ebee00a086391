package ports

import (
	"context"

	"go.trai.ch/reel/internal/core/domain"
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// ProcessorCache is a content-addressed memo table for processor results.
// All operations are safe for concurrent use from multiple expansion tasks,
// and a reader is never blocked behind an insert for an unrelated key.
//
// The cache is a pure performance optimization: a miss (including one
// caused by capacity eviction) is never an error, recomputation is always a
// valid fallback, and eviction order is only approximately recency-based.
type ProcessorCache interface {
	Insert(ctx context.Context, key domain.Fingerprint, value any)
	Get(ctx context.Context, key domain.Fingerprint) (any, bool)
	Invalidate(ctx context.Context, key domain.Fingerprint)
}
