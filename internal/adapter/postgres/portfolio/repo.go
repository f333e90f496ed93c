// Package portfolio implements the portfolio item repository using PostgreSQL.
package portfolio

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/elecmate/apprentice-backend/internal/adapter/postgres"
	"github.com/elecmate/apprentice-backend/internal/domain"
)

// Repo provides portfolio item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new portfolio repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "user_id", "title", "description", "category", "skills_demonstrated",
	"reflection_notes", "assessment_criteria_met", "learning_outcomes_met",
	"storage_urls", "status", "date_completed", "evidence_count", "tags",
	"supervisor_feedback", "source_diary_id", "created_at",
}

const createSQL = `
INSERT INTO portfolio_items (
    id, user_id, title, description, category, skills_demonstrated,
    reflection_notes, assessment_criteria_met, learning_outcomes_met,
    storage_urls, status, date_completed, evidence_count, tags,
    supervisor_feedback, source_diary_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id, user_id, title, description, category, skills_demonstrated,
          reflection_notes, assessment_criteria_met, learning_outcomes_met,
          storage_urls, status, date_completed, evidence_count, tags,
          supervisor_feedback, source_diary_id, created_at`

// Create inserts a portfolio item and returns it as stored.
func (r *Repo) Create(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error) {
	storage, err := json.Marshal(nonNilPhotos(item.StorageURLs))
	if err != nil {
		return nil, fmt.Errorf("portfolio_item marshal storage_urls: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		item.ID, item.UserID, item.Title, item.Description, item.Category,
		nonNil(item.SkillsDemonstrated), item.ReflectionNotes,
		nonNil(item.AssessmentCriteriaMet), nonNil(item.LearningOutcomesMet),
		storage, string(item.Status), item.DateCompleted, item.EvidenceCount,
		nonNil(item.Tags), item.SupervisorFeedback, item.SourceDiaryID,
	)

	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "portfolio_item", item.ID)
	}
	return created, nil
}

// GetByID returns a portfolio item owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.PortfolioItem, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("portfolio_items").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get portfolio_item: %w", err)
	}

	item, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "portfolio_item", id)
	}
	return item, nil
}

// GetByIDs returns the user's items among ids (batch for DataLoader).
// Missing ids are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.PortfolioItem, error) {
	if len(ids) == 0 {
		return []*domain.PortfolioItem{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From("portfolio_items").
		Where(sq.Eq{"user_id": userID}).
		Where("id = ANY(?::uuid[])", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get portfolio_items by ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get portfolio_items by ids: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.PortfolioItem, 0, len(ids))
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan portfolio_item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get portfolio_items by ids: %w", err)
	}

	return items, nil
}

func scanItem(row pgx.Row) (*domain.PortfolioItem, error) {
	var (
		item        domain.PortfolioItem
		description *string
		reflection  *string
		storage     []byte
		status      string
		evidence    int32
	)
	err := row.Scan(
		&item.ID, &item.UserID, &item.Title, &description, &item.Category,
		&item.SkillsDemonstrated, &reflection, &item.AssessmentCriteriaMet,
		&item.LearningOutcomesMet, &storage, &status, &item.DateCompleted,
		&evidence, &item.Tags, &item.SupervisorFeedback, &item.SourceDiaryID,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description != nil {
		item.Description = *description
	}
	if reflection != nil {
		item.ReflectionNotes = *reflection
	}
	item.Status = domain.PortfolioStatus(status)
	item.EvidenceCount = int(evidence)

	if len(storage) > 0 {
		if err := json.Unmarshal(storage, &item.StorageURLs); err != nil {
			return nil, fmt.Errorf("portfolio_item %s unmarshal storage_urls: %w", item.ID, err)
		}
	}

	return &item, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilPhotos(p []domain.PhotoMeta) []domain.PhotoMeta {
	if p == nil {
		return []domain.PhotoMeta{}
	}
	return p
}
