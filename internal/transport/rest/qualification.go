package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

type qualificationService interface {
	GetStudentQualification(ctx context.Context) (*domain.Qualification, error)
}

// QualificationHandler serves the active qualification endpoint.
type QualificationHandler struct {
	svc qualificationService
	log *slog.Logger
}

// NewQualificationHandler creates a QualificationHandler.
func NewQualificationHandler(svc qualificationService, logger *slog.Logger) *QualificationHandler {
	return &QualificationHandler{svc: svc, log: logger.With("handler", "qualification")}
}

type qualificationResponse struct {
	Code         *string `json:"code"`
	Title        string  `json:"title,omitempty"`
	Level        string  `json:"level,omitempty"`
	AwardingBody string  `json:"awardingBody,omitempty"`
}

// Get handles GET /api/qualification. A user without an active qualification
// gets a null code.
func (h *QualificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.GetStudentQualification(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if q == nil {
		writeJSON(w, http.StatusOK, qualificationResponse{})
		return
	}

	code := q.Code
	writeJSON(w, http.StatusOK, qualificationResponse{
		Code:         &code,
		Title:        q.Title,
		Level:        q.Level,
		AwardingBody: q.AwardingBody,
	})
}
