package safety

import (
	"github.com/elecmate/apprentice-backend/internal/domain"
	"sync"
)

var _ viewTracker = &viewTrackerMock{}

type viewTrackerMock struct {
	TrackFunc func(v domain.SafetyView) bool

	calls struct {
		Track []struct {
			V domain.SafetyView
		}
	}
	lockTrack sync.RWMutex
}

func (mock *viewTrackerMock) Track(v domain.SafetyView) bool {
	if mock.TrackFunc == nil {
		panic("viewTrackerMock.TrackFunc: method is nil but viewTracker.Track was just called")
	}
	callInfo := struct {
		V domain.SafetyView
	}{V: v}
	mock.lockTrack.Lock()
	mock.calls.Track = append(mock.calls.Track, callInfo)
	mock.lockTrack.Unlock()
	return mock.TrackFunc(v)
}

func (mock *viewTrackerMock) TrackCalls() []struct {
	V domain.SafetyView
} {
	mock.lockTrack.RLock()
	calls := mock.calls.Track
	mock.lockTrack.RUnlock()
	return calls
}
