package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDiaryEntry creates an unlinked diary entry for userID with tasks,
// skills, a learning note, mood 4 and two photos.
func SeedDiaryEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.SiteDiaryEntry {
	t.Helper()

	learned := "Learned about conduit bending"
	mood := 4
	e := domain.SiteDiaryEntry{
		ID:              uuid.New(),
		UserID:          userID,
		Date:            time.Now().UTC().Truncate(24 * time.Hour),
		SiteName:        "Site " + uniqueSuffix(),
		TasksCompleted:  []string{"Fit socket", "Wiring"},
		SkillsPractised: []string{"Conduit bending"},
		WhatILearned:    &learned,
		MoodRating:      &mood,
		Photos:          []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.png"},
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO site_diary_entries
		     (id, user_id, date, site_name, tasks_completed, skills_practised, what_i_learned, mood_rating, photos)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		e.ID, e.UserID, e.Date, e.SiteName, e.TasksCompleted, e.SkillsPractised, e.WhatILearned, mood, e.Photos,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDiaryEntry: %v", err)
	}

	return e
}

// SeedQualification creates a qualification with two requirement rows
// (one about conduit, one about socket testing) and makes it the active
// selection of userID. Returns the qualification code.
func SeedQualification(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) string {
	t.Helper()
	ctx := context.Background()

	code := "EAL-" + uniqueSuffix()
	var qualID uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO qualifications (code, title, level, awarding_body)
		 VALUES ($1, 'Electrotechnical Installation', '3', 'EAL')
		 RETURNING id`,
		code,
	).Scan(&qualID)
	if err != nil {
		t.Fatalf("testhelper: SeedQualification insert qualification: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO qualification_requirements (qualification_code, unit_code, unit_title, learning_outcome, assessment_criteria)
		 VALUES ($1, '204', 'Wiring systems', 'LO2 Install wiring systems', ARRAY['2.1 Select conduit', '2.3 Bend conduit to specification']),
		        ($1, '305', 'Inspection and testing', 'LO1 Test circuits', ARRAY['1.1 Test socket outlets', ''])`,
		code,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQualification insert requirements: %v", err)
	}

	if userID != uuid.Nil {
		_, err = pool.Exec(ctx,
			`INSERT INTO user_qualification_selections (user_id, qualification_id, is_active) VALUES ($1, $2, true)`,
			userID, qualID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedQualification insert selection: %v", err)
		}
	}

	return code
}

// SeedSafetyAlert creates an active safety alert published at publishedAt.
func SeedSafetyAlert(t *testing.T, pool *pgxpool.Pool, publishedAt time.Time) domain.SafetyAlert {
	t.Helper()

	a := domain.SafetyAlert{
		ID:            uuid.New(),
		Title:         "Alert " + uniqueSuffix(),
		Summary:       "Isolate before work",
		Content:       "## Safe isolation\n\nAlways **prove dead** before touching conductors.",
		Severity:      "high",
		Category:      "isolation",
		DatePublished: publishedAt.UTC().Truncate(time.Microsecond),
		IsActive:      true,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO safety_alerts (id, title, summary, content, severity, category, date_published, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, true)`,
		a.ID, a.Title, a.Summary, a.Content, a.Severity, a.Category, a.DatePublished,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSafetyAlert: %v", err)
	}

	return a
}
