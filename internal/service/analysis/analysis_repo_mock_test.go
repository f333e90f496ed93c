package analysis

import (
	"context"
	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ analysisRepo = &analysisRepoMock{}

type analysisRepoMock struct {
	GetByEntryIDFunc func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.EntryAnalysis, error)
	UpsertFunc       func(ctx context.Context, a *domain.EntryAnalysis) (*domain.EntryAnalysis, error)

	calls struct {
		GetByEntryID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		Upsert []struct {
			Ctx context.Context
			A   *domain.EntryAnalysis
		}
	}
	lockGetByEntryID sync.RWMutex
	lockUpsert       sync.RWMutex
}

func (mock *analysisRepoMock) GetByEntryID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.EntryAnalysis, error) {
	if mock.GetByEntryIDFunc == nil {
		panic("analysisRepoMock.GetByEntryIDFunc: method is nil but analysisRepo.GetByEntryID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{Ctx: ctx, UserID: userID, EntryID: entryID}
	mock.lockGetByEntryID.Lock()
	mock.calls.GetByEntryID = append(mock.calls.GetByEntryID, callInfo)
	mock.lockGetByEntryID.Unlock()
	return mock.GetByEntryIDFunc(ctx, userID, entryID)
}

func (mock *analysisRepoMock) GetByEntryIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockGetByEntryID.RLock()
	calls := mock.calls.GetByEntryID
	mock.lockGetByEntryID.RUnlock()
	return calls
}

func (mock *analysisRepoMock) Upsert(ctx context.Context, a *domain.EntryAnalysis) (*domain.EntryAnalysis, error) {
	if mock.UpsertFunc == nil {
		panic("analysisRepoMock.UpsertFunc: method is nil but analysisRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.EntryAnalysis
	}{Ctx: ctx, A: a}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, a)
}

func (mock *analysisRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	A   *domain.EntryAnalysis
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
