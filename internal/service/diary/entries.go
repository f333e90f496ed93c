package diary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/pkg/ctxutil"
)

// ListEntries returns the current user's entries, newest date first.
// limit <= 0 selects DefaultListLimit; values above MaxListLimit are clamped.
func (s *Service) ListEntries(ctx context.Context, limit int) ([]*domain.SiteDiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	entries, err := s.entries.List(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	return entries, nil
}

// GetEntry returns one of the current user's entries.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.SiteDiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get diary entry: %w", err)
	}
	return entry, nil
}

// CreateEntry stores a new diary entry for the current user.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.SiteDiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.SiteDiaryEntry{
		ID:                uuid.New(),
		UserID:            userID,
		Date:              input.Date,
		SiteName:          strings.TrimSpace(input.SiteName),
		Supervisor:        trimOrNil(input.Supervisor),
		TasksCompleted:    cleanList(input.TasksCompleted),
		SkillsPractised:   cleanList(input.SkillsPractised),
		WhatILearned:      trimOrNil(input.WhatILearned),
		IssuesOrQuestions: trimOrNil(input.IssuesOrQuestions),
		MoodRating:        input.MoodRating,
		Photos:            cleanList(input.Photos),
	}

	var created *domain.SiteDiaryEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.entries.Create(txCtx, entry)
		if createErr != nil {
			return fmt.Errorf("create diary entry: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeDiaryEntry,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"site_name": map[string]any{"new": created.SiteName},
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

	s.log.InfoContext(ctx, "diary entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
	)

	return created, nil
}

// DeleteEntry removes one of the current user's entries. A portfolio item
// created from the entry is kept.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return fmt.Errorf("get diary entry: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.entries.Delete(txCtx, userID, entryID); deleteErr != nil {
			return fmt.Errorf("delete diary entry: %w", deleteErr)
		}

		changes := map[string]any{
			"site_name": map[string]any{"old": entry.SiteName},
		}
		if entry.LinkedPortfolioID != nil {
			changes["linked_portfolio_id"] = entry.LinkedPortfolioID.String()
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeDiaryEntry,
			EntityID:   &entryID,
			Action:     domain.AuditActionDelete,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "diary entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return nil
}
