// Package diary implements the site diary operations for the current user.
package diary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

type entryRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.SiteDiaryEntry, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.SiteDiaryEntry, error)
	Create(ctx context.Context, e *domain.SiteDiaryEntry) (*domain.SiteDiaryEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	MaxPhotos        = 20
	MaxListItems     = 50
	MaxTextLength    = 5000
)

// Service provides diary entry operations.
type Service struct {
	entries entryRepo
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new diary service.
func NewService(log *slog.Logger, entries entryRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		entries: entries,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "diary"),
	}
}
