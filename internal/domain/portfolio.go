package domain

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioStatus is the lifecycle state of a portfolio item.
type PortfolioStatus string

const (
	PortfolioStatusDraft     PortfolioStatus = "draft"
	PortfolioStatusCompleted PortfolioStatus = "completed"
	PortfolioStatusReviewed  PortfolioStatus = "reviewed"
)

func (s PortfolioStatus) String() string { return string(s) }

// PortfolioCategorySiteDiary is the category used for evidence created from a diary entry.
const PortfolioCategorySiteDiary = "site-diary"

// PhotoMeta describes one stored evidence file.
type PhotoMeta struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// PortfolioItem is a piece of evidence in an apprentice's portfolio.
type PortfolioItem struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Title                 string
	Description           string
	Category              string
	SkillsDemonstrated    []string
	ReflectionNotes       string
	AssessmentCriteriaMet []string
	LearningOutcomesMet   []string
	StorageURLs           []PhotoMeta
	Status                PortfolioStatus
	DateCompleted         time.Time
	EvidenceCount         int
	Tags                  []string
	SupervisorFeedback    *string
	SourceDiaryID         *uuid.UUID
	CreatedAt             time.Time
}
