package rest

import (
	"context"
	"github.com/elecmate/apprentice-backend/internal/domain"
	"sync"
)

var _ qualificationService = &qualificationServiceMock{}

type qualificationServiceMock struct {
	GetStudentQualificationFunc func(ctx context.Context) (*domain.Qualification, error)

	calls struct {
		GetStudentQualification []struct {
			Ctx context.Context
		}
	}
	lockGetStudentQualification sync.RWMutex
}

func (mock *qualificationServiceMock) GetStudentQualification(ctx context.Context) (*domain.Qualification, error) {
	if mock.GetStudentQualificationFunc == nil {
		panic("qualificationServiceMock.GetStudentQualificationFunc: method is nil but qualificationService.GetStudentQualification was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetStudentQualification.Lock()
	mock.calls.GetStudentQualification = append(mock.calls.GetStudentQualification, callInfo)
	mock.lockGetStudentQualification.Unlock()
	return mock.GetStudentQualificationFunc(ctx)
}

func (mock *qualificationServiceMock) GetStudentQualificationCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetStudentQualification.RLock()
	calls := mock.calls.GetStudentQualification
	mock.lockGetStudentQualification.RUnlock()
	return calls
}
