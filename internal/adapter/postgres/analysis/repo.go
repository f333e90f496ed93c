// Package analysis implements persistence for AI analyses of diary entries.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/elecmate/apprentice-backend/internal/adapter/postgres"
	"github.com/elecmate/apprentice-backend/internal/domain"
)

// Repo provides entry analysis persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analysis repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByEntryIDSQL = `
SELECT id, entry_id, user_id, summary, matches, model, created_at
FROM diary_entry_analyses
WHERE entry_id = $1 AND user_id = $2`

const getByEntryIDsSQL = `
SELECT id, entry_id, user_id, summary, matches, model, created_at
FROM diary_entry_analyses
WHERE user_id = $1 AND entry_id = ANY($2::uuid[])`

// upsertSQL keeps one analysis per entry; re-running replaces it.
const upsertSQL = `
INSERT INTO diary_entry_analyses (id, entry_id, user_id, summary, matches, model)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (entry_id) DO UPDATE
SET summary = EXCLUDED.summary,
    matches = EXCLUDED.matches,
    model = EXCLUDED.model,
    created_at = now()
RETURNING id, entry_id, user_id, summary, matches, model, created_at`

// GetByEntryID returns the stored analysis for an entry.
// Returns domain.ErrNotFound when the entry has not been analysed.
func (r *Repo) GetByEntryID(ctx context.Context, userID, entryID uuid.UUID) (*domain.EntryAnalysis, error) {
	a, err := scanAnalysis(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByEntryIDSQL, entryID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "entry_analysis", entryID)
	}
	return a, nil
}

// GetByEntryIDs returns analyses for multiple entries (batch for DataLoader).
func (r *Repo) GetByEntryIDs(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) ([]*domain.EntryAnalysis, error) {
	if len(entryIDs) == 0 {
		return []*domain.EntryAnalysis{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByEntryIDsSQL, userID, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("get entry_analyses by entry_ids: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.EntryAnalysis, 0, len(entryIDs))
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry_analysis: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get entry_analyses by entry_ids: %w", err)
	}

	return result, nil
}

// Upsert stores the analysis for its entry, replacing any previous one.
func (r *Repo) Upsert(ctx context.Context, a *domain.EntryAnalysis) (*domain.EntryAnalysis, error) {
	matches := a.Matches
	if matches == nil {
		matches = []domain.ACMatch{}
	}
	matchesJSON, err := json.Marshal(matches)
	if err != nil {
		return nil, fmt.Errorf("entry_analysis marshal matches: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertSQL,
		a.ID, a.EntryID, a.UserID, a.Summary, matchesJSON, a.Model,
	)

	stored, err := scanAnalysis(row)
	if err != nil {
		return nil, postgres.MapError(err, "entry_analysis", a.EntryID)
	}
	return stored, nil
}

func scanAnalysis(row pgx.Row) (*domain.EntryAnalysis, error) {
	var (
		a       domain.EntryAnalysis
		matches []byte
	)
	if err := row.Scan(&a.ID, &a.EntryID, &a.UserID, &a.Summary, &matches, &a.Model, &a.CreatedAt); err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		if err := json.Unmarshal(matches, &a.Matches); err != nil {
			return nil, fmt.Errorf("entry_analysis %s unmarshal matches: %w", a.ID, err)
		}
	}
	return &a, nil
}
