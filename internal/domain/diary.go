package domain

import (
	"time"

	"github.com/google/uuid"
)

// SiteDiaryEntry is one day on site as recorded by an apprentice.
type SiteDiaryEntry struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Date              time.Time
	SiteName          string
	Supervisor        *string
	TasksCompleted    []string
	SkillsPractised   []string
	WhatILearned      *string
	IssuesOrQuestions *string
	MoodRating        *int
	Photos            []string
	LinkedPortfolioID *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLinked reports whether the entry has already been turned into portfolio evidence.
// Once set, the link is never cleared.
func (e *SiteDiaryEntry) IsLinked() bool {
	return e.LinkedPortfolioID != nil
}

// Mood ratings run from 1 (worst) to 5 (best).
const (
	MinMoodRating = 1
	MaxMoodRating = 5
)

var moodLabels = map[int]string{
	1: "Struggling",
	2: "Tough",
	3: "Okay",
	4: "Good",
	5: "Great",
}

var moodEmojis = map[int]string{
	1: "😫",
	2: "😕",
	3: "😐",
	4: "🙂",
	5: "😄",
}

// MoodLabel returns the fixed label for a mood rating.
// The second value is false for ratings outside 1..5.
func MoodLabel(rating int) (string, bool) {
	l, ok := moodLabels[rating]
	return l, ok
}

// MoodEmoji returns the fixed emoji for a mood rating.
func MoodEmoji(rating int) (string, bool) {
	e, ok := moodEmojis[rating]
	return e, ok
}

// ValidMoodRating reports whether r is inside the lookup tables.
func ValidMoodRating(r int) bool {
	return r >= MinMoodRating && r <= MaxMoodRating
}
