package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/pkg/ctxutil"
)

// Stage reports where StartAddToPortfolio left the workflow.
type Stage string

const (
	// StagePicking means suggestions are ready for the user to confirm.
	StagePicking Stage = "picking"
	// StageCreated means the item was created straight away (no qualification).
	StageCreated Stage = "created"
)

// StartResult is the outcome of StartAddToPortfolio.
type StartResult struct {
	Stage       Stage
	Keywords    []string
	Suggestions []domain.SuggestedAC
	Created     *CreateResult
}

// CreateResult is the outcome of creating evidence from an entry.
type CreateResult struct {
	Item   *domain.PortfolioItem
	Notice domain.Notice
}

// StartAddToPortfolio begins the workflow for one entry. With a qualification
// it searches requirements (even with no keywords) and returns pre-selected
// suggestions. Without one it creates the item immediately with no criteria.
func (s *Service) StartAddToPortfolio(ctx context.Context, entryID uuid.UUID) (*StartResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get diary entry: %w", err)
	}
	if entry.IsLinked() {
		return nil, domain.ErrAlreadyLinked
	}

	qual, err := s.quals.GetStudentQualification(ctx)
	if err != nil {
		return nil, fmt.Errorf("get qualification: %w", err)
	}

	if qual == nil {
		created, err := s.create(ctx, userID, entry, nil)
		if err != nil {
			return nil, err
		}
		return &StartResult{Stage: StageCreated, Keywords: []string{}, Created: created}, nil
	}

	keywords := s.ExtractKeywords(entry)
	suggestions, err := s.quals.SearchRequirements(ctx, keywords, qual.Code, s.opts.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search requirements: %w", err)
	}

	analysis, err := s.analyses.GetByEntryID(ctx, userID, entryID)
	if errors.Is(err, domain.ErrNotFound) {
		analysis = nil
	} else if err != nil {
		return nil, fmt.Errorf("get entry analysis: %w", err)
	}

	suggestions = Preselect(suggestions, analysis, s.opts.MinConfidence, s.opts.FallbackSelects)

	s.log.DebugContext(ctx, "portfolio suggestions ready",
		slog.String("entry_id", entryID.String()),
		slog.String("qualification_code", qual.Code),
		slog.Int("keywords", len(keywords)),
		slog.Int("suggestions", len(suggestions)),
		slog.Bool("analysis", analysis != nil),
	)

	return &StartResult{Stage: StagePicking, Keywords: keywords, Suggestions: suggestions}, nil
}

// CreateFromEntry creates a portfolio item from the entry with the given
// criteria and links the entry to it.
func (s *Service) CreateFromEntry(ctx context.Context, input CreateInput) (*CreateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, userID, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get diary entry: %w", err)
	}
	if entry.IsLinked() {
		return nil, domain.ErrAlreadyLinked
	}

	return s.create(ctx, userID, entry, input.Selected)
}

// create inserts the item and links the entry in one transaction. If the link
// fails (including a concurrent link) the insert is rolled back.
func (s *Service) create(ctx context.Context, userID uuid.UUID, entry *domain.SiteDiaryEntry, selected []domain.SuggestedAC) (*CreateResult, error) {
	item := buildItem(entry, selected)
	item.ID = uuid.New()
	item.UserID = userID

	var created *domain.PortfolioItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.items.Create(txCtx, item)
		if createErr != nil {
			return fmt.Errorf("create portfolio item: %w", createErr)
		}

		if linkErr := s.entries.SetLinkedPortfolio(txCtx, userID, entry.ID, created.ID); linkErr != nil {
			return fmt.Errorf("link diary entry: %w", linkErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypePortfolioItem,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"source_diary_id":     map[string]any{"new": entry.ID.String()},
				"assessment_criteria": map[string]any{"new": len(created.AssessmentCriteriaMet)},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "diary entry added to portfolio",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("portfolio_item_id", created.ID.String()),
		slog.Int("criteria", len(selected)),
	)

	return &CreateResult{Item: created, Notice: LinkedNotice(len(selected))}, nil
}
