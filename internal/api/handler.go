package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mtlprog/lendstat/internal/domain"
	"github.com/mtlprog/lendstat/internal/investment"
	"github.com/mtlprog/lendstat/internal/snapshot"
)

const maxBodyBytes = 10 << 20

// DashboardTracker holds the dashboard served by the API.
type DashboardTracker interface {
	Current() investment.Dashboard
	Update(investments []domain.Investment, tokens []domain.Token) (investment.Dashboard, bool)
}

// Handler provides HTTP endpoints for the dashboard API.
type Handler struct {
	tracker DashboardTracker
	opts    investment.Options
}

// NewHandler creates a new API handler.
func NewHandler(tracker DashboardTracker, opts investment.Options) *Handler {
	return &Handler{tracker: tracker, opts: opts}
}

// UpdateResponse is returned by PUT /api/v1/dashboard.
type UpdateResponse struct {
	Updated   bool                 `json:"updated"`
	Dashboard investment.Dashboard `json:"dashboard"`
}

// GetDashboard handles GET /api/v1/dashboard.
func (h *Handler) GetDashboard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.Current())
}

// ComputeDashboard handles POST /api/v1/dashboard/compute.
// The result is not stored; null collections are treated as empty.
func (h *Handler) ComputeDashboard(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, investment.Compute(doc.Investments, doc.Tokens, h.opts))
}

// UpdateDashboard handles PUT /api/v1/dashboard.
// A document with a null collection leaves the current dashboard in place.
func (h *Handler) UpdateDashboard(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}
	d, updated := h.tracker.Update(doc.Investments, doc.Tokens)
	writeJSON(w, http.StatusOK, UpdateResponse{Updated: updated, Dashboard: d})
}

func (h *Handler) decodeDocument(w http.ResponseWriter, r *http.Request) (snapshot.Document, bool) {
	doc, err := snapshot.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return snapshot.Document{}, false
		}
		slog.Warn("rejecting input document", "error", err)
		writeError(w, http.StatusBadRequest, "invalid input document")
		return snapshot.Document{}, false
	}
	return doc, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
