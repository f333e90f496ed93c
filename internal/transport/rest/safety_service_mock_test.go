package rest

import (
	"context"
	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/internal/service/safety"
	"github.com/google/uuid"
	"sync"
)

var _ safetyService = &safetyServiceMock{}

type safetyServiceMock struct {
	ListAlertsFunc     func(ctx context.Context) ([]*domain.SafetyAlert, error)
	ListBookmarkedFunc func(ctx context.Context) ([]*domain.SafetyAlert, error)
	GetAlertFunc       func(ctx context.Context, id uuid.UUID, viewer safety.Viewer) (*safety.AlertDetail, error)
	ToggleBookmarkFunc func(ctx context.Context, alertID uuid.UUID) (*safety.BookmarkResult, error)
	RateAlertFunc      func(ctx context.Context, input safety.RateInput) (*safety.RatingResult, error)

	calls struct {
		ListAlerts []struct {
			Ctx context.Context
		}
		ListBookmarked []struct {
			Ctx context.Context
		}
		GetAlert []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Viewer safety.Viewer
		}
		ToggleBookmark []struct {
			Ctx     context.Context
			AlertID uuid.UUID
		}
		RateAlert []struct {
			Ctx   context.Context
			Input safety.RateInput
		}
	}
	lockListAlerts     sync.RWMutex
	lockListBookmarked sync.RWMutex
	lockGetAlert       sync.RWMutex
	lockToggleBookmark sync.RWMutex
	lockRateAlert      sync.RWMutex
}

func (mock *safetyServiceMock) ListAlerts(ctx context.Context) ([]*domain.SafetyAlert, error) {
	if mock.ListAlertsFunc == nil {
		panic("safetyServiceMock.ListAlertsFunc: method is nil but safetyService.ListAlerts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAlerts.Lock()
	mock.calls.ListAlerts = append(mock.calls.ListAlerts, callInfo)
	mock.lockListAlerts.Unlock()
	return mock.ListAlertsFunc(ctx)
}

func (mock *safetyServiceMock) ListAlertsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAlerts.RLock()
	calls := mock.calls.ListAlerts
	mock.lockListAlerts.RUnlock()
	return calls
}

func (mock *safetyServiceMock) ListBookmarked(ctx context.Context) ([]*domain.SafetyAlert, error) {
	if mock.ListBookmarkedFunc == nil {
		panic("safetyServiceMock.ListBookmarkedFunc: method is nil but safetyService.ListBookmarked was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListBookmarked.Lock()
	mock.calls.ListBookmarked = append(mock.calls.ListBookmarked, callInfo)
	mock.lockListBookmarked.Unlock()
	return mock.ListBookmarkedFunc(ctx)
}

func (mock *safetyServiceMock) ListBookmarkedCalls() []struct {
	Ctx context.Context
} {
	mock.lockListBookmarked.RLock()
	calls := mock.calls.ListBookmarked
	mock.lockListBookmarked.RUnlock()
	return calls
}

func (mock *safetyServiceMock) GetAlert(ctx context.Context, id uuid.UUID, viewer safety.Viewer) (*safety.AlertDetail, error) {
	if mock.GetAlertFunc == nil {
		panic("safetyServiceMock.GetAlertFunc: method is nil but safetyService.GetAlert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Viewer safety.Viewer
	}{Ctx: ctx, ID: id, Viewer: viewer}
	mock.lockGetAlert.Lock()
	mock.calls.GetAlert = append(mock.calls.GetAlert, callInfo)
	mock.lockGetAlert.Unlock()
	return mock.GetAlertFunc(ctx, id, viewer)
}

func (mock *safetyServiceMock) GetAlertCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Viewer safety.Viewer
} {
	mock.lockGetAlert.RLock()
	calls := mock.calls.GetAlert
	mock.lockGetAlert.RUnlock()
	return calls
}

func (mock *safetyServiceMock) ToggleBookmark(ctx context.Context, alertID uuid.UUID) (*safety.BookmarkResult, error) {
	if mock.ToggleBookmarkFunc == nil {
		panic("safetyServiceMock.ToggleBookmarkFunc: method is nil but safetyService.ToggleBookmark was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AlertID uuid.UUID
	}{Ctx: ctx, AlertID: alertID}
	mock.lockToggleBookmark.Lock()
	mock.calls.ToggleBookmark = append(mock.calls.ToggleBookmark, callInfo)
	mock.lockToggleBookmark.Unlock()
	return mock.ToggleBookmarkFunc(ctx, alertID)
}

func (mock *safetyServiceMock) ToggleBookmarkCalls() []struct {
	Ctx     context.Context
	AlertID uuid.UUID
} {
	mock.lockToggleBookmark.RLock()
	calls := mock.calls.ToggleBookmark
	mock.lockToggleBookmark.RUnlock()
	return calls
}

func (mock *safetyServiceMock) RateAlert(ctx context.Context, input safety.RateInput) (*safety.RatingResult, error) {
	if mock.RateAlertFunc == nil {
		panic("safetyServiceMock.RateAlertFunc: method is nil but safetyService.RateAlert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input safety.RateInput
	}{Ctx: ctx, Input: input}
	mock.lockRateAlert.Lock()
	mock.calls.RateAlert = append(mock.calls.RateAlert, callInfo)
	mock.lockRateAlert.Unlock()
	return mock.RateAlertFunc(ctx, input)
}

func (mock *safetyServiceMock) RateAlertCalls() []struct {
	Ctx   context.Context
	Input safety.RateInput
} {
	mock.lockRateAlert.RLock()
	calls := mock.calls.RateAlert
	mock.lockRateAlert.RUnlock()
	return calls
}
