// Package portfolio turns diary entries into portfolio evidence, optionally
// matched against the apprentice's qualification assessment criteria.
package portfolio

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

type entryRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.SiteDiaryEntry, error)
	SetLinkedPortfolio(ctx context.Context, userID, entryID, portfolioID uuid.UUID) error
}

type itemRepo interface {
	Create(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error)
}

type analysisRepo interface {
	GetByEntryID(ctx context.Context, userID, entryID uuid.UUID) (*domain.EntryAnalysis, error)
}

type qualificationSource interface {
	GetStudentQualification(ctx context.Context) (*domain.Qualification, error)
	SearchRequirements(ctx context.Context, keywords []string, code string, limit int) ([]domain.SuggestedAC, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options carries the keyword and pre-selection tuning.
type Options struct {
	MaxKeywords     int
	MinKeywordLen   int
	SearchLimit     int
	MinConfidence   int
	FallbackSelects int
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		MaxKeywords:     15,
		MinKeywordLen:   3,
		SearchLimit:     25,
		MinConfidence:   60,
		FallbackSelects: 3,
	}
}

// Service provides the diary-to-portfolio workflow.
type Service struct {
	entries  entryRepo
	items    itemRepo
	analyses analysisRepo
	quals    qualificationSource
	audit    auditLogger
	tx       txManager
	opts     Options
	log      *slog.Logger
}

// NewService creates a new portfolio service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	items itemRepo,
	analyses analysisRepo,
	quals qualificationSource,
	audit auditLogger,
	tx txManager,
	opts Options,
) *Service {
	return &Service{
		entries:  entries,
		items:    items,
		analyses: analyses,
		quals:    quals,
		audit:    audit,
		tx:       tx,
		opts:     opts,
		log:      log.With("service", "portfolio"),
	}
}
