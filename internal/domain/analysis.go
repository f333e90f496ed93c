package domain

import (
	"time"

	"github.com/google/uuid"
)

// ACMatch is an AI-proposed match between a diary entry and an assessment criterion.
type ACMatch struct {
	UnitCode   string `json:"unit_code"`
	ACCode     string `json:"ac_code"`
	ACText     string `json:"ac_text"`
	Confidence int    `json:"confidence"`
}

// EntryAnalysis is the stored AI analysis of a diary entry.
type EntryAnalysis struct {
	ID        uuid.UUID
	EntryID   uuid.UUID
	UserID    uuid.UUID
	Summary   string
	Matches   []ACMatch
	Model     string
	CreatedAt time.Time
}

// ConfidentMatches returns matches at or above minConfidence.
func (a *EntryAnalysis) ConfidentMatches(minConfidence int) []ACMatch {
	if a == nil {
		return nil
	}
	var out []ACMatch
	for _, m := range a.Matches {
		if m.Confidence >= minConfidence {
			out = append(out, m)
		}
	}
	return out
}
