// Package dataloader provides per-request DataLoaders that batch badge
// summary lookups for plan list responses into single queries.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Source interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type badgeSummarizer interface {
	Summaries(ctx context.Context, planIDs []uuid.UUID) ([]domain.BadgeSummary, error)
}

// Sources holds the services DataLoaders read from.
type Sources struct {
	Summaries badgeSummarizer
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders is created per-request via NewLoaders.
type Loaders struct {
	BadgeSummaryByPlanID *dataloader.Loader[uuid.UUID, domain.BadgeSummary]
}

// NewLoaders creates a new set of DataLoaders backed by src.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(src *Sources) *Loaders {
	return &Loaders{
		BadgeSummaryByPlanID: newLoader(newBadgeSummaryBatchFn(src.Summaries)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
