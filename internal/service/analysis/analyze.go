package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/adapter/llm"
	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/pkg/ctxutil"
)

// GetAnalysis returns the stored analysis for one of the user's entries.
func (s *Service) GetAnalysis(ctx context.Context, entryID uuid.UUID) (*domain.EntryAnalysis, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.analyses.GetByEntryID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry analysis: %w", err)
	}
	return a, nil
}

// AnalyzeEntry produces and stores a fresh analysis for the entry.
// Linked entries are refused with domain.ErrConflict.
func (s *Service) AnalyzeEntry(ctx context.Context, entryID uuid.UUID) (*domain.EntryAnalysis, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if s.llm == nil {
		return nil, ErrUnavailable
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get diary entry: %w", err)
	}
	if entry.IsLinked() {
		return nil, fmt.Errorf("analyze entry: %w", domain.ErrConflict)
	}

	qual, err := s.quals.GetStudentQualification(ctx)
	if err != nil {
		return nil, fmt.Errorf("get qualification: %w", err)
	}
	if qual == nil {
		return nil, domain.ErrNoQualification
	}

	candidates, err := s.quals.SearchRequirements(ctx, entry.Keywords(s.opts.MinKeywordLen, s.opts.MaxKeywords), qual.Code, s.opts.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search requirements: %w", err)
	}

	reply, err := s.llm.Complete(ctx, buildPrompt(entry, qual, candidates))
	if err != nil {
		return nil, fmt.Errorf("analyze entry: %w", err)
	}

	summary, matches, err := parseReply(reply)
	if err != nil {
		s.log.WarnContext(ctx, "unusable analysis reply",
			slog.String("entry_id", entryID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("parse analysis: %w", err)
	}

	stored, err := s.analyses.Upsert(ctx, &domain.EntryAnalysis{
		ID:      uuid.New(),
		EntryID: entry.ID,
		UserID:  userID,
		Summary: summary,
		Matches: matches,
		Model:   s.llm.Model(),
	})
	if err != nil {
		return nil, fmt.Errorf("store entry analysis: %w", err)
	}

	s.log.InfoContext(ctx, "diary entry analysed",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)),
	)

	return stored, nil
}

type llmReply struct {
	Summary string           `json:"summary"`
	Matches []domain.ACMatch `json:"matches"`
}

// parseReply extracts the JSON object from the model output, drops matches
// without a criterion and clamps confidence into 0..100.
func parseReply(reply string) (string, []domain.ACMatch, error) {
	raw, err := llm.ExtractJSON(reply)
	if err != nil {
		return "", nil, err
	}

	var r llmReply
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return "", nil, fmt.Errorf("decode reply: %w", err)
	}

	matches := make([]domain.ACMatch, 0, len(r.Matches))
	for _, m := range r.Matches {
		m.UnitCode = strings.TrimSpace(m.UnitCode)
		m.ACCode = strings.TrimSpace(m.ACCode)
		m.ACText = strings.TrimSpace(m.ACText)
		if m.UnitCode == "" || (m.ACCode == "" && m.ACText == "") {
			continue
		}
		m.Confidence = min(max(m.Confidence, 0), 100)
		matches = append(matches, m)
	}

	return strings.TrimSpace(r.Summary), matches, nil
}
