// Package dataloader provides per-request DataLoaders for batching GraphQL
// resolver queries into single SQL calls. DataLoaders call repositories
// directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/probelab/gqlprobe/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type recordRepo interface {
	ListBySessionIDs(ctx context.Context, sessionIDs []uuid.UUID) ([]domain.EchoRecord, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Record recordRepo
}

// Loaders contains the per-request DataLoader instances. Created per-request
// via NewLoaders (loaders cache results within a single request).
type Loaders struct {
	RecordsBySessionID *dataloader.Loader[uuid.UUID, []domain.EchoRecord]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		RecordsBySessionID: newLoader(newRecordsBatchFn(repos.Record)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

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
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
