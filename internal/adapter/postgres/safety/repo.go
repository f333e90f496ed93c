// Package safety implements the safety alert repository and the per-user
// bookmark, rating and view tables using PostgreSQL.
package safety

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

// Repo provides safety content persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new safety repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var alertColumns = []string{
	"a.id", "a.title", "a.summary", "a.content", "a.severity", "a.category",
	"a.date_published", "a.view_count", "a.average_rating::float8", "a.is_active",
}

const bookmarkExistsSQL = `
SELECT EXISTS(
    SELECT 1 FROM safety_bookmarks
    WHERE user_id = $1 AND content_type = $2 AND content_id = $3
)`

const addBookmarkSQL = `
INSERT INTO safety_bookmarks (user_id, content_type, content_id)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, content_type, content_id) DO NOTHING`

const removeBookmarkSQL = `
DELETE FROM safety_bookmarks
WHERE user_id = $1 AND content_type = $2 AND content_id = $3`

const upsertRatingSQL = `
INSERT INTO safety_content_ratings (user_id, content_type, content_id, rating, feedback)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, content_type, content_id) DO UPDATE
SET rating = EXCLUDED.rating,
    feedback = EXCLUDED.feedback,
    updated_at = now()`

const recomputeAverageSQL = `
UPDATE safety_alerts a
SET average_rating = (
        SELECT round(avg(r.rating)::numeric, 2)
        FROM safety_content_ratings r
        WHERE r.content_type = $2 AND r.content_id = a.id
    ),
    updated_at = now()
WHERE a.id = $1
RETURNING a.average_rating::float8`

const recomputeAllAveragesSQL = `
UPDATE safety_alerts a
SET average_rating = (
        SELECT round(avg(r.rating)::numeric, 2)
        FROM safety_content_ratings r
        WHERE r.content_type = $1 AND r.content_id = a.id
    ),
    updated_at = now()`

// recordViewSQL inserts the view row and bumps the alert counter in one statement.
const recordViewSQL = `
WITH v AS (
    INSERT INTO safety_content_views (content_type, content_id, user_id, session_id, user_agent)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING content_id
)
UPDATE safety_alerts
SET view_count = view_count + 1
WHERE id = (SELECT content_id FROM v) AND $1 = 'safety_alert'`

// ---------------------------------------------------------------------------
// Alerts
// ---------------------------------------------------------------------------

// ListActive returns active alerts ordered by publish date, newest first.
func (r *Repo) ListActive(ctx context.Context, limit int) ([]*domain.SafetyAlert, error) {
	b := postgres.Builder().
		Select(alertColumns...).
		From("safety_alerts a").
		Where(sq.Eq{"a.is_active": true}).
		OrderBy("a.date_published DESC", "a.id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return r.queryAlerts(ctx, b, "list active safety_alerts")
}

// GetByID returns an active alert.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SafetyAlert, error) {
	query, args, err := postgres.Builder().
		Select(alertColumns...).
		From("safety_alerts a").
		Where(sq.Eq{"a.id": id, "a.is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get safety_alert: %w", err)
	}

	a, err := scanAlert(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "safety_alert", id)
	}
	return a, nil
}

// ListBookmarked returns the active alerts the user has bookmarked,
// most recently bookmarked first.
func (r *Repo) ListBookmarked(ctx context.Context, userID uuid.UUID) ([]*domain.SafetyAlert, error) {
	b := postgres.Builder().
		Select(alertColumns...).
		From("safety_alerts a").
		Join("safety_bookmarks b ON b.content_id = a.id AND b.content_type = ?", string(domain.ContentTypeSafetyAlert)).
		Where(sq.Eq{"b.user_id": userID, "a.is_active": true}).
		OrderBy("b.created_at DESC")
	return r.queryAlerts(ctx, b, "list bookmarked safety_alerts")
}

func (r *Repo) queryAlerts(ctx context.Context, b sq.SelectBuilder, op string) ([]*domain.SafetyAlert, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	alerts := make([]*domain.SafetyAlert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan safety_alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return alerts, nil
}

// ---------------------------------------------------------------------------
// Per-user overlays
// ---------------------------------------------------------------------------

// BookmarkedIDs returns which of contentIDs the user has bookmarked.
func (r *Repo) BookmarkedIDs(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(contentIDs))
	if len(contentIDs) == 0 {
		return result, nil
	}

	query, args, err := postgres.Builder().
		Select("content_id").
		From("safety_bookmarks").
		Where(sq.Eq{"user_id": userID, "content_type": string(ct)}).
		Where("content_id = ANY(?::uuid[])", contentIDs).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bookmarked ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("bookmarked ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan bookmarked id: %w", err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bookmarked ids: %w", err)
	}
	return result, nil
}

// Ratings returns the user's rating for each of contentIDs that has one.
func (r *Repo) Ratings(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	result := make(map[uuid.UUID]int, len(contentIDs))
	if len(contentIDs) == 0 {
		return result, nil
	}

	query, args, err := postgres.Builder().
		Select("content_id", "rating").
		From("safety_content_ratings").
		Where(sq.Eq{"user_id": userID, "content_type": string(ct)}).
		Where("content_id = ANY(?::uuid[])", contentIDs).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ratings: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ratings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     uuid.UUID
			rating int32
		)
		if err := rows.Scan(&id, &rating); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		result[id] = int(rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ratings: %w", err)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Bookmarks
// ---------------------------------------------------------------------------

// BookmarkExists reports whether the bookmark row exists.
func (r *Repo) BookmarkExists(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, bookmarkExistsSQL, userID, string(ct), contentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("bookmark exists: %w", err)
	}
	return exists, nil
}

// AddBookmark inserts the bookmark; an existing bookmark is left as is.
func (r *Repo) AddBookmark(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, addBookmarkSQL, userID, string(ct), contentID); err != nil {
		return postgres.MapError(err, "safety_bookmark", contentID)
	}
	return nil
}

// RemoveBookmark deletes the bookmark; a missing bookmark is not an error.
func (r *Repo) RemoveBookmark(ctx context.Context, userID uuid.UUID, ct domain.ContentType, contentID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, removeBookmarkSQL, userID, string(ct), contentID); err != nil {
		return postgres.MapError(err, "safety_bookmark", contentID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Ratings
// ---------------------------------------------------------------------------

// UpsertRating stores the user's rating, replacing any earlier one.
func (r *Repo) UpsertRating(ctx context.Context, rating domain.SafetyRating) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, upsertRatingSQL,
		rating.UserID, string(rating.ContentType), rating.ContentID, rating.Rating, rating.Feedback,
	)
	if err != nil {
		return postgres.MapError(err, "safety_rating", rating.ContentID)
	}
	return nil
}

// RecomputeAverage recalculates average_rating for an alert from all ratings
// and returns the new value (nil when the alert has no ratings).
func (r *Repo) RecomputeAverage(ctx context.Context, alertID uuid.UUID) (*float64, error) {
	var avg *float64
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, recomputeAverageSQL, alertID, string(domain.ContentTypeSafetyAlert)).
		Scan(&avg)
	if err != nil {
		return nil, postgres.MapError(err, "safety_alert", alertID)
	}
	return avg, nil
}

// RecomputeAllAverages recalculates average_rating for every alert and
// returns the number of alerts updated.
func (r *Repo) RecomputeAllAverages(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, recomputeAllAveragesSQL, string(domain.ContentTypeSafetyAlert))
	if err != nil {
		return 0, fmt.Errorf("recompute safety_alert averages: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

// RecordView stores a view row and increments the alert's view counter.
func (r *Repo) RecordView(ctx context.Context, v domain.SafetyView) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, recordViewSQL,
		string(v.ContentType), v.ContentID, v.UserID, nullIfEmpty(v.SessionID), nullIfEmpty(v.UserAgent),
	)
	if err != nil {
		return postgres.MapError(err, "safety_view", v.ContentID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanAlert(row pgx.Row) (*domain.SafetyAlert, error) {
	var (
		a     domain.SafetyAlert
		views int32
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Summary, &a.Content, &a.Severity, &a.Category,
		&a.DatePublished, &views, &a.AverageRating, &a.IsActive,
	)
	if err != nil {
		return nil, err
	}
	a.ViewCount = int(views)
	return &a, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
