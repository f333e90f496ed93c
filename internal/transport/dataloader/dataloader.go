// Package dataloader provides per-request DataLoaders that batch the diary
// list's portfolio and analysis lookups into single SQL calls. Loaders call
// repositories directly; ownership is enforced by the user_id filter in the
// repo queries.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type portfolioRepo interface {
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.PortfolioItem, error)
}

type analysisRepo interface {
	GetByEntryIDs(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) ([]*domain.EntryAnalysis, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Portfolio portfolioRepo
	Analysis  analysisRepo
}

// Loaders contains the per-request DataLoaders.
type Loaders struct {
	PortfolioItemByID *dataloader.Loader[uuid.UUID, *domain.PortfolioItem]
	AnalysisByEntryID *dataloader.Loader[uuid.UUID, *domain.EntryAnalysis]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		PortfolioItemByID: newLoader(newPortfolioBatchFn(repos.Portfolio)),
		AnalysisByEntryID: newLoader(newAnalysisBatchFn(repos.Analysis)),
	}
}

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

// FromContext retrieves Loaders from the context, or nil when the middleware
// did not run.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
