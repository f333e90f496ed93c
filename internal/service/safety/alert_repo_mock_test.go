package safety

import (
	"context"
	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ alertRepo = &alertRepoMock{}

type alertRepoMock struct {
	ListActiveFunc           func(ctx context.Context, limit int) ([]*domain.SafetyAlert, error)
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.SafetyAlert, error)
	ListBookmarkedFunc       func(ctx context.Context, userID uuid.UUID) ([]*domain.SafetyAlert, error)
	BookmarkedIDsFunc        func(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	RatingsFunc              func(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentIDs []uuid.UUID) (map[uuid.UUID]int, error)
	BookmarkExistsFunc       func(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) (bool, error)
	AddBookmarkFunc          func(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) error
	RemoveBookmarkFunc       func(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) error
	UpsertRatingFunc         func(ctx context.Context, rating domain.SafetyRating) error
	RecomputeAverageFunc     func(ctx context.Context, alertID uuid.UUID) (*float64, error)
	RecomputeAllAveragesFunc func(ctx context.Context) (int64, error)

	calls struct {
		ListActive []struct {
			Ctx   context.Context
			Limit int
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListBookmarked []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		BookmarkedIDs []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			Ct         domain.ContentType
			ContentIDs []uuid.UUID
		}
		Ratings []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			Ct         domain.ContentType
			ContentIDs []uuid.UUID
		}
		BookmarkExists []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			Ct        domain.ContentType
			ContentID uuid.UUID
		}
		AddBookmark []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			Ct        domain.ContentType
			ContentID uuid.UUID
		}
		RemoveBookmark []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			Ct        domain.ContentType
			ContentID uuid.UUID
		}
		UpsertRating []struct {
			Ctx    context.Context
			Rating domain.SafetyRating
		}
		RecomputeAverage []struct {
			Ctx     context.Context
			AlertID uuid.UUID
		}
		RecomputeAllAverages []struct {
			Ctx context.Context
		}
	}
	lockListActive           sync.RWMutex
	lockGetByID              sync.RWMutex
	lockListBookmarked       sync.RWMutex
	lockBookmarkedIDs        sync.RWMutex
	lockRatings              sync.RWMutex
	lockBookmarkExists       sync.RWMutex
	lockAddBookmark          sync.RWMutex
	lockRemoveBookmark       sync.RWMutex
	lockUpsertRating         sync.RWMutex
	lockRecomputeAverage     sync.RWMutex
	lockRecomputeAllAverages sync.RWMutex
}

func (mock *alertRepoMock) ListActive(ctx context.Context, limit int) ([]*domain.SafetyAlert, error) {
	if mock.ListActiveFunc == nil {
		panic("alertRepoMock.ListActiveFunc: method is nil but alertRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, limit)
}

func (mock *alertRepoMock) ListActiveCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *alertRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.SafetyAlert, error) {
	if mock.GetByIDFunc == nil {
		panic("alertRepoMock.GetByIDFunc: method is nil but alertRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *alertRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *alertRepoMock) ListBookmarked(ctx context.Context, userID uuid.UUID) ([]*domain.SafetyAlert, error) {
	if mock.ListBookmarkedFunc == nil {
		panic("alertRepoMock.ListBookmarkedFunc: method is nil but alertRepo.ListBookmarked was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListBookmarked.Lock()
	mock.calls.ListBookmarked = append(mock.calls.ListBookmarked, callInfo)
	mock.lockListBookmarked.Unlock()
	return mock.ListBookmarkedFunc(ctx, userID)
}

func (mock *alertRepoMock) ListBookmarkedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListBookmarked.RLock()
	calls := mock.calls.ListBookmarked
	mock.lockListBookmarked.RUnlock()
	return calls
}

func (mock *alertRepoMock) BookmarkedIDs(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if mock.BookmarkedIDsFunc == nil {
		panic("alertRepoMock.BookmarkedIDsFunc: method is nil but alertRepo.BookmarkedIDs was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Ct         domain.ContentType
		ContentIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, Ct: ct, ContentIDs: contentIDs}
	mock.lockBookmarkedIDs.Lock()
	mock.calls.BookmarkedIDs = append(mock.calls.BookmarkedIDs, callInfo)
	mock.lockBookmarkedIDs.Unlock()
	return mock.BookmarkedIDsFunc(ctx, userID, ct, contentIDs)
}

func (mock *alertRepoMock) BookmarkedIDsCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	Ct         domain.ContentType
	ContentIDs []uuid.UUID
} {
	mock.lockBookmarkedIDs.RLock()
	calls := mock.calls.BookmarkedIDs
	mock.lockBookmarkedIDs.RUnlock()
	return calls
}

func (mock *alertRepoMock) Ratings(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if mock.RatingsFunc == nil {
		panic("alertRepoMock.RatingsFunc: method is nil but alertRepo.Ratings was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Ct         domain.ContentType
		ContentIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, Ct: ct, ContentIDs: contentIDs}
	mock.lockRatings.Lock()
	mock.calls.Ratings = append(mock.calls.Ratings, callInfo)
	mock.lockRatings.Unlock()
	return mock.RatingsFunc(ctx, userID, ct, contentIDs)
}

func (mock *alertRepoMock) RatingsCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	Ct         domain.ContentType
	ContentIDs []uuid.UUID
} {
	mock.lockRatings.RLock()
	calls := mock.calls.Ratings
	mock.lockRatings.RUnlock()
	return calls
}

func (mock *alertRepoMock) BookmarkExists(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) (bool, error) {
	if mock.BookmarkExistsFunc == nil {
		panic("alertRepoMock.BookmarkExistsFunc: method is nil but alertRepo.BookmarkExists was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Ct        domain.ContentType
		ContentID uuid.UUID
	}{Ctx: ctx, UserID: userID, Ct: ct, ContentID: contentID}
	mock.lockBookmarkExists.Lock()
	mock.calls.BookmarkExists = append(mock.calls.BookmarkExists, callInfo)
	mock.lockBookmarkExists.Unlock()
	return mock.BookmarkExistsFunc(ctx, userID, ct, contentID)
}

func (mock *alertRepoMock) BookmarkExistsCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	Ct        domain.ContentType
	ContentID uuid.UUID
} {
	mock.lockBookmarkExists.RLock()
	calls := mock.calls.BookmarkExists
	mock.lockBookmarkExists.RUnlock()
	return calls
}

func (mock *alertRepoMock) AddBookmark(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) error {
	if mock.AddBookmarkFunc == nil {
		panic("alertRepoMock.AddBookmarkFunc: method is nil but alertRepo.AddBookmark was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Ct        domain.ContentType
		ContentID uuid.UUID
	}{Ctx: ctx, UserID: userID, Ct: ct, ContentID: contentID}
	mock.lockAddBookmark.Lock()
	mock.calls.AddBookmark = append(mock.calls.AddBookmark, callInfo)
	mock.lockAddBookmark.Unlock()
	return mock.AddBookmarkFunc(ctx, userID, ct, contentID)
}

func (mock *alertRepoMock) AddBookmarkCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	Ct        domain.ContentType
	ContentID uuid.UUID
} {
	mock.lockAddBookmark.RLock()
	calls := mock.calls.AddBookmark
	mock.lockAddBookmark.RUnlock()
	return calls
}

func (mock *alertRepoMock) RemoveBookmark(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) error {
	if mock.RemoveBookmarkFunc == nil {
		panic("alertRepoMock.RemoveBookmarkFunc: method is nil but alertRepo.RemoveBookmark was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Ct        domain.ContentType
		ContentID uuid.UUID
	}{Ctx: ctx, UserID: userID, Ct: ct, ContentID: contentID}
	mock.lockRemoveBookmark.Lock()
	mock.calls.RemoveBookmark = append(mock.calls.RemoveBookmark, callInfo)
	mock.lockRemoveBookmark.Unlock()
	return mock.RemoveBookmarkFunc(ctx, userID, ct, contentID)
}

func (mock *alertRepoMock) RemoveBookmarkCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	Ct        domain.ContentType
	ContentID uuid.UUID
} {
	mock.lockRemoveBookmark.RLock()
	calls := mock.calls.RemoveBookmark
	mock.lockRemoveBookmark.RUnlock()
	return calls
}

func (mock *alertRepoMock) UpsertRating(ctx context.Context, rating domain.SafetyRating) error {
	if mock.UpsertRatingFunc == nil {
		panic("alertRepoMock.UpsertRatingFunc: method is nil but alertRepo.UpsertRating was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Rating domain.SafetyRating
	}{Ctx: ctx, Rating: rating}
	mock.lockUpsertRating.Lock()
	mock.calls.UpsertRating = append(mock.calls.UpsertRating, callInfo)
	mock.lockUpsertRating.Unlock()
	return mock.UpsertRatingFunc(ctx, rating)
}

func (mock *alertRepoMock) UpsertRatingCalls() []struct {
	Ctx    context.Context
	Rating domain.SafetyRating
} {
	mock.lockUpsertRating.RLock()
	calls := mock.calls.UpsertRating
	mock.lockUpsertRating.RUnlock()
	return calls
}

func (mock *alertRepoMock) RecomputeAverage(ctx context.Context, alertID uuid.UUID) (*float64, error) {
	if mock.RecomputeAverageFunc == nil {
		panic("alertRepoMock.RecomputeAverageFunc: method is nil but alertRepo.RecomputeAverage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AlertID uuid.UUID
	}{Ctx: ctx, AlertID: alertID}
	mock.lockRecomputeAverage.Lock()
	mock.calls.RecomputeAverage = append(mock.calls.RecomputeAverage, callInfo)
	mock.lockRecomputeAverage.Unlock()
	return mock.RecomputeAverageFunc(ctx, alertID)
}

func (mock *alertRepoMock) RecomputeAverageCalls() []struct {
	Ctx     context.Context
	AlertID uuid.UUID
} {
	mock.lockRecomputeAverage.RLock()
	calls := mock.calls.RecomputeAverage
	mock.lockRecomputeAverage.RUnlock()
	return calls
}

func (mock *alertRepoMock) RecomputeAllAverages(ctx context.Context) (int64, error) {
	if mock.RecomputeAllAveragesFunc == nil {
		panic("alertRepoMock.RecomputeAllAveragesFunc: method is nil but alertRepo.RecomputeAllAverages was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRecomputeAllAverages.Lock()
	mock.calls.RecomputeAllAverages = append(mock.calls.RecomputeAllAverages, callInfo)
	mock.lockRecomputeAllAverages.Unlock()
	return mock.RecomputeAllAveragesFunc(ctx)
}

func (mock *alertRepoMock) RecomputeAllAveragesCalls() []struct {
	Ctx context.Context
} {
	mock.lockRecomputeAllAverages.RLock()
	calls := mock.calls.RecomputeAllAverages
	mock.lockRecomputeAllAverages.RUnlock()
	return calls
}
