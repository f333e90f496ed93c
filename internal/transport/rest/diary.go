package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/internal/service/diary"
	"github.com/elecmate/apprentice-backend/internal/service/portfolio"
	"github.com/elecmate/apprentice-backend/internal/service/sheet"
	"github.com/elecmate/apprentice-backend/internal/transport/dataloader"
)

type diaryService interface {
	ListEntries(ctx context.Context, limit int) ([]*domain.SiteDiaryEntry, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.SiteDiaryEntry, error)
	CreateEntry(ctx context.Context, input diary.CreateEntryInput) (*domain.SiteDiaryEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
}

type analysisService interface {
	GetAnalysis(ctx context.Context, entryID uuid.UUID) (*domain.EntryAnalysis, error)
	AnalyzeEntry(ctx context.Context, entryID uuid.UUID) (*domain.EntryAnalysis, error)
}

type portfolioService interface {
	StartAddToPortfolio(ctx context.Context, entryID uuid.UUID) (*portfolio.StartResult, error)
	CreateFromEntry(ctx context.Context, input portfolio.CreateInput) (*portfolio.CreateResult, error)
}

// DiaryHandler serves the site diary, analysis and evidence-linking endpoints.
type DiaryHandler struct {
	diary     diaryService
	analysis  analysisService
	portfolio portfolioService
	log       *slog.Logger
}

// NewDiaryHandler creates a DiaryHandler.
func NewDiaryHandler(d diaryService, a analysisService, p portfolioService, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{
		diary:     d,
		analysis:  a,
		portfolio: p,
		log:       logger.With("handler", "diary"),
	}
}

type createEntryRequest struct {
	Date              string   `json:"date"`
	SiteName          string   `json:"siteName"`
	Supervisor        *string  `json:"supervisor"`
	TasksCompleted    []string `json:"tasksCompleted"`
	SkillsPractised   []string `json:"skillsPractised"`
	WhatILearned      *string  `json:"whatILearned"`
	IssuesOrQuestions *string  `json:"issuesOrQuestions"`
	MoodRating        *int     `json:"moodRating"`
	Photos            []string `json:"photos"`
}

type createFromEntryRequest struct {
	Selected []domain.SuggestedAC `json:"selected"`
}

type startResponse struct {
	Stage       string               `json:"stage"`
	Keywords    []string             `json:"keywords"`
	Suggestions []domain.SuggestedAC `json:"suggestions"`
	Created     *createResponse      `json:"created,omitempty"`
}

type createResponse struct {
	Item   *portfolioItemResponse `json:"item"`
	Notice domain.Notice          `json:"notice"`
}

// List handles GET /api/diary?limit=N.
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.diary.ListEntries(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.resolveListItems(r.Context(), entries)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// resolveListItems queues every lookup before waiting on any, so each loader
// issues one batched query for the whole page.
func (h *DiaryHandler) resolveListItems(ctx context.Context, entries []*domain.SiteDiaryEntry) ([]entryListItem, error) {
	items := make([]entryListItem, len(entries))
	for i, e := range entries {
		items[i].entryResponse = toEntryResponse(e)
	}

	loaders := dataloader.FromContext(ctx)
	if loaders == nil || len(entries) == 0 {
		return items, nil
	}

	type pending struct {
		item     func() (*domain.PortfolioItem, error)
		analysis func() (*domain.EntryAnalysis, error)
	}
	thunks := make([]pending, len(entries))
	for i, e := range entries {
		if e.LinkedPortfolioID != nil {
			thunks[i].item = loaders.PortfolioItemByID.Load(ctx, *e.LinkedPortfolioID)
		} else {
			thunks[i].analysis = loaders.AnalysisByEntryID.Load(ctx, e.ID)
		}
	}

	for i, p := range thunks {
		if p.item != nil {
			it, err := p.item()
			if err != nil {
				return nil, err
			}
			if it != nil {
				title := it.Title
				items[i].LinkedPortfolioTitle = &title
			}
		}
		if p.analysis != nil {
			a, err := p.analysis()
			if err != nil {
				return nil, err
			}
			items[i].HasAnalysis = a != nil
		}
	}
	return items, nil
}

// Create handles POST /api/diary.
func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		d, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("date", "must be YYYY-MM-DD"))
			return
		}
		date = d
	}

	entry, err := h.diary.CreateEntry(r.Context(), diary.CreateEntryInput{
		Date:              date,
		SiteName:          req.SiteName,
		Supervisor:        req.Supervisor,
		TasksCompleted:    req.TasksCompleted,
		SkillsPractised:   req.SkillsPractised,
		WhatILearned:      req.WhatILearned,
		IssuesOrQuestions: req.IssuesOrQuestions,
		MoodRating:        req.MoodRating,
		Photos:            req.Photos,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Get handles GET /api/diary/{id}. It returns the detail sheet projection.
func (h *DiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.diary.GetEntry(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sheet.New(entry, nil, nil).View())
}

// Delete handles DELETE /api/diary/{id}. The two-tap confirmation is a client
// concern; the request itself is the confirmed tap.
func (h *DiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.diary.DeleteEntry(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetAnalysis handles GET /api/diary/{id}/analysis.
func (h *DiaryHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	a, err := h.analysis.GetAnalysis(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisResponse(a))
}

// Analyze handles POST /api/diary/{id}/analysis.
func (h *DiaryHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	a, err := h.analysis.AnalyzeEntry(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisResponse(a))
}

// StartPortfolio handles POST /api/diary/{id}/portfolio/start.
func (h *DiaryHandler) StartPortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.portfolio.StartAddToPortfolio(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := startResponse{
		Stage:       string(res.Stage),
		Keywords:    res.Keywords,
		Suggestions: res.Suggestions,
	}
	if resp.Keywords == nil {
		resp.Keywords = []string{}
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []domain.SuggestedAC{}
	}
	status := http.StatusOK
	if res.Created != nil {
		resp.Created = toCreateResponse(res.Created)
		status = http.StatusCreated
	}

	writeJSON(w, status, resp)
}

// CreatePortfolio handles POST /api/diary/{id}/portfolio with the confirmed
// selection.
func (h *DiaryHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req createFromEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.portfolio.CreateFromEntry(r.Context(), portfolio.CreateInput{
		EntryID:  id,
		Selected: req.Selected,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCreateResponse(res))
}

func toCreateResponse(res *portfolio.CreateResult) *createResponse {
	return &createResponse{
		Item:   toPortfolioItemResponse(res.Item),
		Notice: res.Notice,
	}
}
