package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/elecmate/apprentice-backend/internal/service/tracker"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type viewStats interface {
	Stats() tracker.Stats
}

// HealthHandler serves the liveness, readiness and full health probes.
type HealthHandler struct {
	db      dbPinger
	views   viewStats
	version string
}

// NewHealthHandler creates a HealthHandler. views may be nil, in which case
// the view tracker is left out of /health.
func NewHealthHandler(db dbPinger, views viewStats, version string) *HealthHandler {
	return &HealthHandler{db: db, views: views, version: version}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Pending *int   `json:"pending,omitempty"`
	Dropped *int64 `json:"dropped,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 503 while the database is unreachable. The view tracker
// does not gate readiness.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())

	code := http.StatusOK
	if db.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports every component. A stopped view tracker degrades the
// status but keeps the 200; a database outage is a 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: map[string]CompStatus{"database": h.checkDB(r.Context())},
		Timestamp:  time.Now(),
	}

	if h.views != nil {
		vt := h.checkViews()
		resp.Components["view_tracker"] = vt
		if vt.Status != "ok" {
			resp.Status = "degraded"
		}
	}

	code := http.StatusOK
	if resp.Components["database"].Status != "ok" {
		resp.Status = "down"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

func (h *HealthHandler) checkDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func (h *HealthHandler) checkViews() CompStatus {
	st := h.views.Stats()
	cs := CompStatus{Status: "ok", Pending: &st.Pending, Dropped: &st.Dropped}
	if !st.Running {
		cs.Status = "stopped"
	}
	return cs
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
