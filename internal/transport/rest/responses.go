package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

type entryResponse struct {
	ID                uuid.UUID  `json:"id"`
	Date              string     `json:"date"`
	SiteName          string     `json:"siteName"`
	Supervisor        *string    `json:"supervisor,omitempty"`
	TasksCompleted    []string   `json:"tasksCompleted"`
	SkillsPractised   []string   `json:"skillsPractised"`
	WhatILearned      *string    `json:"whatILearned,omitempty"`
	IssuesOrQuestions *string    `json:"issuesOrQuestions,omitempty"`
	MoodRating        *int       `json:"moodRating,omitempty"`
	Photos            []string   `json:"photos"`
	LinkedPortfolioID *uuid.UUID `json:"linkedPortfolioId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func toEntryResponse(e *domain.SiteDiaryEntry) entryResponse {
	return entryResponse{
		ID:                e.ID,
		Date:              e.Date.Format(time.DateOnly),
		SiteName:          e.SiteName,
		Supervisor:        e.Supervisor,
		TasksCompleted:    e.TasksCompleted,
		SkillsPractised:   e.SkillsPractised,
		WhatILearned:      e.WhatILearned,
		IssuesOrQuestions: e.IssuesOrQuestions,
		MoodRating:        e.MoodRating,
		Photos:            e.Photos,
		LinkedPortfolioID: e.LinkedPortfolioID,
		CreatedAt:         e.CreatedAt,
	}
}

// entryListItem is a diary list row with the linked item title and the
// analysis flag resolved through the per-request loaders.
type entryListItem struct {
	entryResponse
	LinkedPortfolioTitle *string `json:"linkedPortfolioTitle,omitempty"`
	HasAnalysis          bool    `json:"hasAnalysis"`
}

type portfolioItemResponse struct {
	ID                    uuid.UUID          `json:"id"`
	Title                 string             `json:"title"`
	Description           string             `json:"description"`
	Category              string             `json:"category"`
	SkillsDemonstrated    []string           `json:"skillsDemonstrated"`
	ReflectionNotes       string             `json:"reflectionNotes"`
	AssessmentCriteriaMet []string           `json:"assessmentCriteriaMet"`
	LearningOutcomesMet   []string           `json:"learningOutcomesMet"`
	StorageURLs           []domain.PhotoMeta `json:"storageUrls"`
	Status                string             `json:"status"`
	DateCompleted         string             `json:"dateCompleted"`
	EvidenceCount         int                `json:"evidenceCount"`
	Tags                  []string           `json:"tags"`
	SourceDiaryID         *uuid.UUID         `json:"sourceDiaryId,omitempty"`
	CreatedAt             time.Time          `json:"createdAt"`
}

func toPortfolioItemResponse(it *domain.PortfolioItem) *portfolioItemResponse {
	if it == nil {
		return nil
	}
	return &portfolioItemResponse{
		ID:                    it.ID,
		Title:                 it.Title,
		Description:           it.Description,
		Category:              it.Category,
		SkillsDemonstrated:    it.SkillsDemonstrated,
		ReflectionNotes:       it.ReflectionNotes,
		AssessmentCriteriaMet: it.AssessmentCriteriaMet,
		LearningOutcomesMet:   it.LearningOutcomesMet,
		StorageURLs:           it.StorageURLs,
		Status:                it.Status.String(),
		DateCompleted:         it.DateCompleted.Format(time.DateOnly),
		EvidenceCount:         it.EvidenceCount,
		Tags:                  it.Tags,
		SourceDiaryID:         it.SourceDiaryID,
		CreatedAt:             it.CreatedAt,
	}
}

type analysisResponse struct {
	EntryID   uuid.UUID        `json:"entryId"`
	Summary   string           `json:"summary"`
	Matches   []domain.ACMatch `json:"matches"`
	Model     string           `json:"model"`
	CreatedAt time.Time        `json:"createdAt"`
}

func toAnalysisResponse(a *domain.EntryAnalysis) analysisResponse {
	matches := a.Matches
	if matches == nil {
		matches = []domain.ACMatch{}
	}
	return analysisResponse{
		EntryID:   a.EntryID,
		Summary:   a.Summary,
		Matches:   matches,
		Model:     a.Model,
		CreatedAt: a.CreatedAt,
	}
}

type alertResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	Severity      string    `json:"severity"`
	Category      string    `json:"category"`
	DatePublished time.Time `json:"datePublished"`
	ViewCount     int       `json:"viewCount"`
	AverageRating *float64  `json:"averageRating,omitempty"`
	IsBookmarked  bool      `json:"isBookmarked"`
	UserRating    *int      `json:"userRating,omitempty"`
}

func toAlertResponse(a *domain.SafetyAlert) alertResponse {
	return alertResponse{
		ID:            a.ID,
		Title:         a.Title,
		Summary:       a.Summary,
		Severity:      a.Severity,
		Category:      a.Category,
		DatePublished: a.DatePublished,
		ViewCount:     a.ViewCount,
		AverageRating: a.AverageRating,
		IsBookmarked:  a.IsBookmarked,
		UserRating:    a.UserRating,
	}
}

func toAlertResponses(alerts []*domain.SafetyAlert) []alertResponse {
	out := make([]alertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = toAlertResponse(a)
	}
	return out
}
