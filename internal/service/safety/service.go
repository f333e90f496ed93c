// Package safety serves published safety alerts with per-user bookmark and
// rating overlays.
package safety

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

type alertRepo interface {
	ListActive(ctx context.Context, limit int) ([]*domain.SafetyAlert, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SafetyAlert, error)
	ListBookmarked(ctx context.Context, userID uuid.UUID) ([]*domain.SafetyAlert, error)
	BookmarkedIDs(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	Ratings(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentIDs []uuid.UUID) (map[uuid.UUID]int, error)
	BookmarkExists(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) (bool, error)
	AddBookmark(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) error
	RemoveBookmark(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) error
	UpsertRating(ctx context.Context, rating domain.SafetyRating) error
	RecomputeAverage(ctx context.Context, alertID uuid.UUID) (*float64, error)
	RecomputeAllAverages(ctx context.Context) (int64, error)
}

type viewTracker interface {
	Track(v domain.SafetyView) bool
}

type txManager interface {
	RunSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultListLimit is the number of alerts shown when no limit is configured.
const DefaultListLimit = 10

// Service provides safety alert operations.
type Service struct {
	alerts    alertRepo
	tracker   viewTracker
	tx        txManager
	renderer  *Renderer
	listLimit int
	log       *slog.Logger
}

// NewService creates a new safety service.
func NewService(log *slog.Logger, alerts alertRepo, tracker viewTracker, tx txManager, listLimit int) *Service {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &Service{
		alerts:    alerts,
		tracker:   tracker,
		tx:        tx,
		renderer:  NewRenderer(),
		listLimit: listLimit,
		log:       log.With("service", "safety"),
	}
}
