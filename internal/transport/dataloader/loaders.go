package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/pkg/ctxutil"
)

func newPortfolioBatchFn(repo portfolioRepo) dataloader.BatchFunc[uuid.UUID, *domain.PortfolioItem] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.PortfolioItem] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.PortfolioItem](len(keys), domain.ErrUnauthorized)
		}

		items, err := repo.GetByIDs(ctx, userID, keys)
		if err != nil {
			return errorResults[*domain.PortfolioItem](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.PortfolioItem, len(items))
		for _, it := range items {
			byID[it.ID] = it
		}
		return mapResults(keys, byID)
	}
}

func newAnalysisBatchFn(repo analysisRepo) dataloader.BatchFunc[uuid.UUID, *domain.EntryAnalysis] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.EntryAnalysis] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.EntryAnalysis](len(keys), domain.ErrUnauthorized)
		}

		rows, err := repo.GetByEntryIDs(ctx, userID, keys)
		if err != nil {
			return errorResults[*domain.EntryAnalysis](len(keys), err)
		}

		byEntry := make(map[uuid.UUID]*domain.EntryAnalysis, len(rows))
		for _, a := range rows {
			byEntry[a.EntryID] = a
		}
		return mapResults(keys, byEntry)
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

// mapResults maps results back to key order. Missing keys yield the zero value.
func mapResults[V any](keys []uuid.UUID, found map[uuid.UUID]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: found[key]}
	}
	return results
}
