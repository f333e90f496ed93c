// Package diary implements the site diary repository using PostgreSQL.
package diary

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/elecmate/apprentice-backend/internal/adapter/postgres"
	"github.com/elecmate/apprentice-backend/internal/domain"
)

// Repo provides diary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new diary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "user_id", "date", "site_name", "supervisor", "tasks_completed",
	"skills_practised", "what_i_learned", "issues_or_questions", "mood_rating",
	"photos", "linked_portfolio_id", "created_at", "updated_at",
}

const getByIDSQL = `
SELECT id, user_id, date, site_name, supervisor, tasks_completed,
       skills_practised, what_i_learned, issues_or_questions, mood_rating,
       photos, linked_portfolio_id, created_at, updated_at
FROM site_diary_entries
WHERE id = $1 AND user_id = $2`

const createSQL = `
INSERT INTO site_diary_entries (
    id, user_id, date, site_name, supervisor, tasks_completed, skills_practised,
    what_i_learned, issues_or_questions, mood_rating, photos
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, user_id, date, site_name, supervisor, tasks_completed,
          skills_practised, what_i_learned, issues_or_questions, mood_rating,
          photos, linked_portfolio_id, created_at, updated_at`

const deleteSQL = `DELETE FROM site_diary_entries WHERE id = $1 AND user_id = $2`

// linkSQL only succeeds while the entry is unlinked: the link is set once.
const linkSQL = `
UPDATE site_diary_entries
SET linked_portfolio_id = $3, updated_at = now()
WHERE id = $1 AND user_id = $2 AND linked_portfolio_id IS NULL`

const isLinkedSQL = `
SELECT linked_portfolio_id IS NOT NULL
FROM site_diary_entries
WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.SiteDiaryEntry, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, entryID, userID)

	e, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "diary_entry", entryID)
	}
	return e, nil
}

// List returns the user's entries, newest date first. limit <= 0 means no limit.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.SiteDiaryEntry, error) {
	b := postgres.Builder().
		Select(columns...).
		From("site_diary_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list diary entries: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.SiteDiaryEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan diary entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns it as stored.
func (r *Repo) Create(ctx context.Context, e *domain.SiteDiaryEntry) (*domain.SiteDiaryEntry, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		e.ID, e.UserID, e.Date, e.SiteName, e.Supervisor,
		nonNil(e.TasksCompleted), nonNil(e.SkillsPractised),
		e.WhatILearned, e.IssuesOrQuestions, e.MoodRating, nonNil(e.Photos),
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "diary_entry", e.ID)
	}
	return created, nil
}

// Delete removes an entry owned by userID.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, entryID, userID)
	if err != nil {
		return postgres.MapError(err, "diary_entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("diary_entry %s: %w", entryID, domain.ErrNotFound)
	}
	return nil
}

// SetLinkedPortfolio records the portfolio item created from an entry.
// Returns domain.ErrAlreadyLinked if the entry already has a link and
// domain.ErrNotFound if the entry does not exist for this user.
func (r *Repo) SetLinkedPortfolio(ctx context.Context, userID, entryID, portfolioID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, linkSQL, entryID, userID, portfolioID)
	if err != nil {
		return postgres.MapError(err, "diary_entry", entryID)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var linked bool
	if err := q.QueryRow(ctx, isLinkedSQL, entryID, userID).Scan(&linked); err != nil {
		return postgres.MapError(err, "diary_entry", entryID)
	}
	if linked {
		return fmt.Errorf("diary_entry %s: %w", entryID, domain.ErrAlreadyLinked)
	}
	return fmt.Errorf("diary_entry %s: link not applied", entryID)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.SiteDiaryEntry, error) {
	var (
		e    domain.SiteDiaryEntry
		mood *int32
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.Date, &e.SiteName, &e.Supervisor, &e.TasksCompleted,
		&e.SkillsPractised, &e.WhatILearned, &e.IssuesOrQuestions, &mood,
		&e.Photos, &e.LinkedPortfolioID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if mood != nil {
		m := int(*mood)
		e.MoodRating = &m
	}
	return &e, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
