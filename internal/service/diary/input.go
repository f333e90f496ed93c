package diary

import (
	"fmt"
	"strings"
	"time"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

// CreateEntryInput holds the fields of a new diary entry.
type CreateEntryInput struct {
	Date              time.Time
	SiteName          string
	Supervisor        *string
	TasksCompleted    []string
	SkillsPractised   []string
	WhatILearned      *string
	IssuesOrQuestions *string
	MoodRating        *int
	Photos            []string
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	site := strings.TrimSpace(i.SiteName)
	if site == "" {
		errs = append(errs, domain.FieldError{Field: "site_name", Message: "required"})
	}
	if len(site) > 200 {
		errs = append(errs, domain.FieldError{Field: "site_name", Message: "max 200 characters"})
	}

	if i.MoodRating != nil && !domain.ValidMoodRating(*i.MoodRating) {
		errs = append(errs, domain.FieldError{
			Field:   "mood_rating",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinMoodRating, domain.MaxMoodRating),
		})
	}

	if len(i.TasksCompleted) > MaxListItems {
		errs = append(errs, domain.FieldError{Field: "tasks_completed", Message: fmt.Sprintf("max %d items", MaxListItems)})
	}
	if len(i.SkillsPractised) > MaxListItems {
		errs = append(errs, domain.FieldError{Field: "skills_practised", Message: fmt.Sprintf("max %d items", MaxListItems)})
	}
	if len(i.Photos) > MaxPhotos {
		errs = append(errs, domain.FieldError{Field: "photos", Message: fmt.Sprintf("max %d photos", MaxPhotos)})
	}
	for _, p := range i.Photos {
		if !strings.HasPrefix(p, "https://") && !strings.HasPrefix(p, "http://") {
			errs = append(errs, domain.FieldError{Field: "photos", Message: "must be http(s) URLs"})
			break
		}
	}

	if i.WhatILearned != nil && len(*i.WhatILearned) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "what_i_learned", Message: fmt.Sprintf("max %d characters", MaxTextLength)})
	}
	if i.IssuesOrQuestions != nil && len(*i.IssuesOrQuestions) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "issues_or_questions", Message: fmt.Sprintf("max %d characters", MaxTextLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// cleanList trims items and drops blanks.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			out = append(out, t)
		}
	}
	return out
}
