package domain

import "strings"

// RequirementRow is one row returned by the qualification requirements search.
// Rows are validated at the repository boundary before use.
type RequirementRow struct {
	UnitCode           string
	UnitTitle          string
	LearningOutcome    string
	AssessmentCriteria []string
}

// Validate checks the row has what a suggestion needs.
func (r RequirementRow) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(r.UnitCode) == "" {
		errs = append(errs, FieldError{Field: "unit_code", Message: "required"})
	}
	nonEmpty := 0
	for _, ac := range r.AssessmentCriteria {
		if strings.TrimSpace(ac) != "" {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		errs = append(errs, FieldError{Field: "assessment_criteria", Message: "at least one required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// SuggestedAC is a candidate assessment criterion offered in the portfolio picker.
// It only lives for the duration of one "add to portfolio" attempt.
type SuggestedAC struct {
	UnitCode  string `json:"unitCode"`
	UnitTitle string `json:"unitTitle"`
	ACText    string `json:"acText"`
	LOText    string `json:"loText"`
	Selected  bool   `json:"selected"`
}

// Suggestions flattens the row into one SuggestedAC per non-empty criterion.
func (r RequirementRow) Suggestions() []SuggestedAC {
	out := make([]SuggestedAC, 0, len(r.AssessmentCriteria))
	for _, ac := range r.AssessmentCriteria {
		ac = strings.TrimSpace(ac)
		if ac == "" {
			continue
		}
		out = append(out, SuggestedAC{
			UnitCode:  strings.TrimSpace(r.UnitCode),
			UnitTitle: strings.TrimSpace(r.UnitTitle),
			ACText:    ac,
			LOText:    strings.TrimSpace(r.LearningOutcome),
		})
	}
	return out
}

// Qualification is the course an apprentice is working towards.
type Qualification struct {
	Code         string
	Title        string
	Level        string
	AwardingBody string
}
