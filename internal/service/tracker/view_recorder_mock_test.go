package tracker

import (
	"context"
	"github.com/elecmate/apprentice-backend/internal/domain"
	"sync"
)

var _ viewRecorder = &viewRecorderMock{}

type viewRecorderMock struct {
	RecordViewFunc func(ctx context.Context, v domain.SafetyView) error

	calls struct {
		RecordView []struct {
			Ctx context.Context
			V   domain.SafetyView
		}
	}
	lockRecordView sync.RWMutex
}

func (mock *viewRecorderMock) RecordView(ctx context.Context, v domain.SafetyView) error {
	if mock.RecordViewFunc == nil {
		panic("viewRecorderMock.RecordViewFunc: method is nil but viewRecorder.RecordView was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   domain.SafetyView
	}{Ctx: ctx, V: v}
	mock.lockRecordView.Lock()
	mock.calls.RecordView = append(mock.calls.RecordView, callInfo)
	mock.lockRecordView.Unlock()
	return mock.RecordViewFunc(ctx, v)
}

func (mock *viewRecorderMock) RecordViewCalls() []struct {
	Ctx context.Context
	V   domain.SafetyView
} {
	mock.lockRecordView.RLock()
	calls := mock.calls.RecordView
	mock.lockRecordView.RUnlock()
	return calls
}
