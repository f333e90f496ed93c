// Package analysis asks an LLM which assessment criteria a diary entry
// evidences and stores the answer per entry.
package analysis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

// ErrUnavailable is returned by AnalyzeEntry when no LLM is configured.
var ErrUnavailable = errors.New("entry analysis unavailable")

type entryRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.SiteDiaryEntry, error)
}

type analysisRepo interface {
	GetByEntryID(ctx context.Context, userID, entryID uuid.UUID) (*domain.EntryAnalysis, error)
	Upsert(ctx context.Context, a *domain.EntryAnalysis) (*domain.EntryAnalysis, error)
}

type qualificationSource interface {
	GetStudentQualification(ctx context.Context) (*domain.Qualification, error)
	SearchRequirements(ctx context.Context, keywords []string, code string, limit int) ([]domain.SuggestedAC, error)
}

type llmClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Options tune how candidate criteria are gathered for the prompt.
type Options struct {
	MinKeywordLen int
	MaxKeywords   int
	SearchLimit   int
}

// Service provides diary entry analysis.
type Service struct {
	entries  entryRepo
	analyses analysisRepo
	quals    qualificationSource
	llm      llmClient
	opts     Options
	log      *slog.Logger
}

// NewService creates a new analysis service. llm may be nil, in which case
// stored analyses can still be read but new ones cannot be produced.
func NewService(log *slog.Logger, entries entryRepo, analyses analysisRepo, quals qualificationSource, llm llmClient, opts Options) *Service {
	return &Service{
		entries:  entries,
		analyses: analyses,
		quals:    quals,
		llm:      llm,
		opts:     opts,
		log:      log.With("service", "analysis"),
	}
}
