package rest

import (
	"context"
	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/internal/service/diary"
	"github.com/google/uuid"
	"sync"
)

var _ diaryService = &diaryServiceMock{}

type diaryServiceMock struct {
	ListEntriesFunc func(ctx context.Context, limit int) ([]*domain.SiteDiaryEntry, error)
	GetEntryFunc    func(ctx context.Context, entryID uuid.UUID) (*domain.SiteDiaryEntry, error)
	CreateEntryFunc func(ctx context.Context, input diary.CreateEntryInput) (*domain.SiteDiaryEntry, error)
	DeleteEntryFunc func(ctx context.Context, entryID uuid.UUID) error

	calls struct {
		ListEntries []struct {
			Ctx   context.Context
			Limit int
		}
		GetEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		CreateEntry []struct {
			Ctx   context.Context
			Input diary.CreateEntryInput
		}
		DeleteEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
	}
	lockListEntries sync.RWMutex
	lockGetEntry    sync.RWMutex
	lockCreateEntry sync.RWMutex
	lockDeleteEntry sync.RWMutex
}

func (mock *diaryServiceMock) ListEntries(ctx context.Context, limit int) ([]*domain.SiteDiaryEntry, error) {
	if mock.ListEntriesFunc == nil {
		panic("diaryServiceMock.ListEntriesFunc: method is nil but diaryService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, limit)
}

func (mock *diaryServiceMock) ListEntriesCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *diaryServiceMock) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.SiteDiaryEntry, error) {
	if mock.GetEntryFunc == nil {
		panic("diaryServiceMock.GetEntryFunc: method is nil but diaryService.GetEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockGetEntry.Lock()
	mock.calls.GetEntry = append(mock.calls.GetEntry, callInfo)
	mock.lockGetEntry.Unlock()
	return mock.GetEntryFunc(ctx, entryID)
}

func (mock *diaryServiceMock) GetEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockGetEntry.RLock()
	calls := mock.calls.GetEntry
	mock.lockGetEntry.RUnlock()
	return calls
}

func (mock *diaryServiceMock) CreateEntry(ctx context.Context, input diary.CreateEntryInput) (*domain.SiteDiaryEntry, error) {
	if mock.CreateEntryFunc == nil {
		panic("diaryServiceMock.CreateEntryFunc: method is nil but diaryService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input diary.CreateEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *diaryServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input diary.CreateEntryInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *diaryServiceMock) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	if mock.DeleteEntryFunc == nil {
		panic("diaryServiceMock.DeleteEntryFunc: method is nil but diaryService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, entryID)
}

func (mock *diaryServiceMock) DeleteEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}
