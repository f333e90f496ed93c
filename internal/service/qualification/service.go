// Package qualification resolves the user's active qualification and turns
// requirement search results into assessment criteria suggestions.
package qualification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/pkg/ctxutil"
)

type qualificationRepo interface {
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.Qualification, error)
	SearchRequirements(ctx context.Context, keywords []string, code string, limit int) ([]domain.RequirementRow, error)
}

// Service provides qualification lookups.
type Service struct {
	repo qualificationRepo
	log  *slog.Logger
}

// NewService creates a new qualification service.
func NewService(log *slog.Logger, repo qualificationRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "qualification"),
	}
}

// GetStudentQualification returns the current user's active qualification,
// or nil when none is selected.
func (s *Service) GetStudentQualification(ctx context.Context) (*domain.Qualification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	q, err := s.repo.GetActive(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active qualification: %w", err)
	}
	return q, nil
}

// SearchRequirements runs the requirements search and flattens valid rows
// into unselected suggestions, one per assessment criterion. Rows that fail
// validation are dropped and logged. An empty keyword list is still searched.
func (s *Service) SearchRequirements(ctx context.Context, keywords []string, code string, limit int) ([]domain.SuggestedAC, error) {
	if code == "" {
		return nil, domain.NewValidationError("qualification_code", "required")
	}

	rows, err := s.repo.SearchRequirements(ctx, keywords, code, limit)
	if err != nil {
		return nil, fmt.Errorf("search requirements: %w", err)
	}

	suggestions := make([]domain.SuggestedAC, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			dropped++
			s.log.WarnContext(ctx, "requirement row dropped",
				slog.String("qualification_code", code),
				slog.String("unit_code", row.UnitCode),
				slog.String("reason", err.Error()),
			)
			continue
		}
		suggestions = append(suggestions, row.Suggestions()...)
	}

	s.log.DebugContext(ctx, "requirements searched",
		slog.String("qualification_code", code),
		slog.Int("keywords", len(keywords)),
		slog.Int("rows", len(rows)),
		slog.Int("dropped", dropped),
		slog.Int("suggestions", len(suggestions)),
	)

	return suggestions, nil
}
