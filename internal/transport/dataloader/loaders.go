package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/domain"
)

// ---------------------------------------------------------------------------
// Badge summaries by PlanID
// ---------------------------------------------------------------------------

func newBadgeSummaryBatchFn(src badgeSummarizer) dataloader.BatchFunc[uuid.UUID, domain.BadgeSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.BadgeSummary] {
		summaries, err := src.Summaries(ctx, keys)
		if err != nil {
			return errorResults[domain.BadgeSummary](len(keys), err)
		}
		if len(summaries) != len(keys) {
			return errorResults[domain.BadgeSummary](len(keys),
				fmt.Errorf("badge summaries: got %d results for %d plans", len(summaries), len(keys)))
		}

		grouped := make(map[uuid.UUID]domain.BadgeSummary, len(keys))
		for _, s := range summaries {
			grouped[s.PlanID] = s
		}

		return mapResults(keys, grouped, func(id uuid.UUID) domain.BadgeSummary {
			return domain.BadgeSummary{PlanID: id, Inline: []domain.Badge{}}
		})
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func(uuid.UUID) V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn(key)}
		}
	}
	return results
}
