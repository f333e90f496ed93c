package portfolio

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

// MaxSelected caps how many criteria one portfolio item can claim.
const MaxSelected = 200

// CreateInput is the confirmed picker state for one entry.
type CreateInput struct {
	EntryID  uuid.UUID
	Selected []domain.SuggestedAC
}

// Validate checks the input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if len(i.Selected) > MaxSelected {
		errs = append(errs, domain.FieldError{Field: "selected", Message: fmt.Sprintf("at most %d allowed", MaxSelected)})
	}
	for idx, s := range i.Selected {
		if strings.TrimSpace(s.UnitCode) == "" || strings.TrimSpace(s.ACText) == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("selected[%d]", idx),
				Message: "unit code and criterion text required",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
