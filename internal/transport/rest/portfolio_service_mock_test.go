package rest

import (
	"context"
	"github.com/elecmate/apprentice-backend/internal/service/portfolio"
	"github.com/google/uuid"
	"sync"
)

var _ portfolioService = &portfolioServiceMock{}

type portfolioServiceMock struct {
	StartAddToPortfolioFunc func(ctx context.Context, entryID uuid.UUID) (*portfolio.StartResult, error)
	CreateFromEntryFunc     func(ctx context.Context, input portfolio.CreateInput) (*portfolio.CreateResult, error)

	calls struct {
		StartAddToPortfolio []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		CreateFromEntry []struct {
			Ctx   context.Context
			Input portfolio.CreateInput
		}
	}
	lockStartAddToPortfolio sync.RWMutex
	lockCreateFromEntry     sync.RWMutex
}

func (mock *portfolioServiceMock) StartAddToPortfolio(ctx context.Context, entryID uuid.UUID) (*portfolio.StartResult, error) {
	if mock.StartAddToPortfolioFunc == nil {
		panic("portfolioServiceMock.StartAddToPortfolioFunc: method is nil but portfolioService.StartAddToPortfolio was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockStartAddToPortfolio.Lock()
	mock.calls.StartAddToPortfolio = append(mock.calls.StartAddToPortfolio, callInfo)
	mock.lockStartAddToPortfolio.Unlock()
	return mock.StartAddToPortfolioFunc(ctx, entryID)
}

func (mock *portfolioServiceMock) StartAddToPortfolioCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockStartAddToPortfolio.RLock()
	calls := mock.calls.StartAddToPortfolio
	mock.lockStartAddToPortfolio.RUnlock()
	return calls
}

func (mock *portfolioServiceMock) CreateFromEntry(ctx context.Context, input portfolio.CreateInput) (*portfolio.CreateResult, error) {
	if mock.CreateFromEntryFunc == nil {
		panic("portfolioServiceMock.CreateFromEntryFunc: method is nil but portfolioService.CreateFromEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input portfolio.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateFromEntry.Lock()
	mock.calls.CreateFromEntry = append(mock.calls.CreateFromEntry, callInfo)
	mock.lockCreateFromEntry.Unlock()
	return mock.CreateFromEntryFunc(ctx, input)
}

func (mock *portfolioServiceMock) CreateFromEntryCalls() []struct {
	Ctx   context.Context
	Input portfolio.CreateInput
} {
	mock.lockCreateFromEntry.RLock()
	calls := mock.calls.CreateFromEntry
	mock.lockCreateFromEntry.RUnlock()
	return calls
}
