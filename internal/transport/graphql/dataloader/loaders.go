package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/probelab/gqlprobe/internal/domain"
)

func newRecordsBatchFn(repo recordRepo) dataloader.BatchFunc[uuid.UUID, []domain.EchoRecord] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.EchoRecord] {
		rows, err := repo.ListBySessionIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.EchoRecord](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.EchoRecord, len(keys))
		for _, r := range rows {
			grouped[r.SessionID] = append(grouped[r.SessionID], r)
		}

		return mapResults(keys, grouped, emptySlice[domain.EchoRecord])
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
