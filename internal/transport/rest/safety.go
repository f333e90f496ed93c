package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/internal/service/safety"
)

// sessionIDHeader carries the client's anonymous viewing session.
const sessionIDHeader = "X-Session-Id"

type safetyService interface {
	ListAlerts(ctx context.Context) ([]*domain.SafetyAlert, error)
	ListBookmarked(ctx context.Context) ([]*domain.SafetyAlert, error)
	GetAlert(ctx context.Context, id uuid.UUID, viewer safety.Viewer) (*safety.AlertDetail, error)
	ToggleBookmark(ctx context.Context, alertID uuid.UUID) (*safety.BookmarkResult, error)
	RateAlert(ctx context.Context, input safety.RateInput) (*safety.RatingResult, error)
}

// SafetyHandler serves the safety alert endpoints.
type SafetyHandler struct {
	svc safetyService
	log *slog.Logger
}

// NewSafetyHandler creates a SafetyHandler.
func NewSafetyHandler(svc safetyService, logger *slog.Logger) *SafetyHandler {
	return &SafetyHandler{svc: svc, log: logger.With("handler", "safety")}
}

type alertDetailResponse struct {
	alertResponse
	ContentHTML string `json:"contentHtml"`
}

type bookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

type rateRequest struct {
	Rating   int     `json:"rating"`
	Feedback *string `json:"feedback"`
}

type ratingResponse struct {
	Rating        int      `json:"rating"`
	AverageRating *float64 `json:"averageRating"`
}

// List handles GET /api/safety/alerts.
func (h *SafetyHandler) List(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.svc.ListAlerts(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponses(alerts))
}

// Bookmarked handles GET /api/safety/alerts/bookmarked.
func (h *SafetyHandler) Bookmarked(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.svc.ListBookmarked(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlertResponses(alerts))
}

// Get handles GET /api/safety/alerts/{id}. Opening an alert records a view.
func (h *SafetyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.GetAlert(r.Context(), id, safety.Viewer{
		SessionID: r.Header.Get(sessionIDHeader),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, alertDetailResponse{
		alertResponse: toAlertResponse(detail.Alert),
		ContentHTML:   detail.ContentHTML,
	})
}

// ToggleBookmark handles POST /api/safety/alerts/{id}/bookmark. The response
// carries the reconciled state.
func (h *SafetyHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ToggleBookmark(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, bookmarkResponse{Bookmarked: res.Bookmarked})
}

// Rate handles PUT /api/safety/alerts/{id}/rating.
func (h *SafetyHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.RateAlert(r.Context(), safety.RateInput{
		AlertID:  id,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, ratingResponse{Rating: res.Rating, AverageRating: res.AverageRating})
}
