package qualification

import (
	"context"
	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ qualificationRepo = &qualificationRepoMock{}

type qualificationRepoMock struct {
	GetActiveFunc          func(ctx context.Context, userID uuid.UUID) (*domain.Qualification, error)
	SearchRequirementsFunc func(ctx context.Context, keywords []string, code string, limit int) ([]domain.RequirementRow, error)

	calls struct {
		GetActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		SearchRequirements []struct {
			Ctx      context.Context
			Keywords []string
			Code     string
			Limit    int
		}
	}
	lockGetActive          sync.RWMutex
	lockSearchRequirements sync.RWMutex
}

func (mock *qualificationRepoMock) GetActive(ctx context.Context, userID uuid.UUID) (*domain.Qualification, error) {
	if mock.GetActiveFunc == nil {
		panic("qualificationRepoMock.GetActiveFunc: method is nil but qualificationRepo.GetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, callInfo)
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx, userID)
}

func (mock *qualificationRepoMock) GetActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetActive.RLock()
	calls := mock.calls.GetActive
	mock.lockGetActive.RUnlock()
	return calls
}

func (mock *qualificationRepoMock) SearchRequirements(ctx context.Context, keywords []string, code string, limit int) ([]domain.RequirementRow, error) {
	if mock.SearchRequirementsFunc == nil {
		panic("qualificationRepoMock.SearchRequirementsFunc: method is nil but qualificationRepo.SearchRequirements was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Keywords []string
		Code     string
		Limit    int
	}{Ctx: ctx, Keywords: keywords, Code: code, Limit: limit}
	mock.lockSearchRequirements.Lock()
	mock.calls.SearchRequirements = append(mock.calls.SearchRequirements, callInfo)
	mock.lockSearchRequirements.Unlock()
	return mock.SearchRequirementsFunc(ctx, keywords, code, limit)
}

func (mock *qualificationRepoMock) SearchRequirementsCalls() []struct {
	Ctx      context.Context
	Keywords []string
	Code     string
	Limit    int
} {
	mock.lockSearchRequirements.RLock()
	calls := mock.calls.SearchRequirements
	mock.lockSearchRequirements.RUnlock()
	return calls
}
