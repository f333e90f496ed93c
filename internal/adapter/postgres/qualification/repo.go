// Package qualification implements read access to qualifications, the
// user's active selection and the requirements search function.
package qualification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/elecmate/apprentice-backend/internal/adapter/postgres"
	"github.com/elecmate/apprentice-backend/internal/domain"
)

// Repo provides qualification reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new qualification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getActiveSQL = `
SELECT q.code, q.title, q.level, q.awarding_body
FROM user_qualification_selections s
JOIN qualifications q ON q.id = s.qualification_id
WHERE s.user_id = $1 AND s.is_active
ORDER BY s.selected_at DESC
LIMIT 1`

const searchSQL = `
SELECT unit_code, unit_title, learning_outcome, assessment_criteria
FROM search_qualification_requirements($1::text[], $2::text, $3::int)`

// GetActive returns the user's active qualification.
// Returns domain.ErrNotFound when the user has not selected one.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.Qualification, error) {
	var q domain.Qualification
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getActiveSQL, userID).
		Scan(&q.Code, &q.Title, &q.Level, &q.AwardingBody)
	if err != nil {
		return nil, postgres.MapError(err, "qualification_selection", userID)
	}
	return &q, nil
}

// SearchRequirements calls search_qualification_requirements and returns
// its rows unvalidated. An empty keyword list is passed as an empty array,
// never NULL.
func (r *Repo) SearchRequirements(ctx context.Context, keywords []string, code string, limit int) ([]domain.RequirementRow, error) {
	if keywords == nil {
		keywords = []string{}
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, searchSQL, keywords, code, limit)
	if err != nil {
		return nil, fmt.Errorf("search qualification requirements: %w", err)
	}
	defer rows.Close()

	result := make([]domain.RequirementRow, 0)
	for rows.Next() {
		var (
			row                        domain.RequirementRow
			unitCode, unitTitle, loTxt *string
		)
		if err := rows.Scan(&unitCode, &unitTitle, &loTxt, &row.AssessmentCriteria); err != nil {
			return nil, fmt.Errorf("scan requirement row: %w", err)
		}
		row.UnitCode = deref(unitCode)
		row.UnitTitle = deref(unitTitle)
		row.LearningOutcome = deref(loTxt)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search qualification requirements: %w", err)
	}

	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
