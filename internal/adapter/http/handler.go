package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adpulse/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the read surface over
// campaigns, analyses and recommendations plus on-demand triggers for the
// pipeline and for notifications.
type Handler struct {
	analyses  port.AnalysisUseCase
	campaigns port.CampaignUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(analyses port.AnalysisUseCase, campaigns port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{analyses: analyses, campaigns: campaigns, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)

		r.Get("/analyses", h.handleListAnalyses)
		r.Get("/analyses/{id}", h.handleGetAnalysis)
		r.Post("/analyses/run", h.handleRunAnalysis)
		r.Post("/analyses/{id}/notify", h.handleNotify)

		r.Get("/recommendations", h.handleListRecommendations)
		r.Get("/recommendations/{id}", h.handleGetRecommendation)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// idParam parses the {id} path parameter. A false return means a 400 has
// already been written.
func (h *Handler) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// paging reads skip/limit query parameters, tolerating absence.
func paging(r *http.Request) (skip, limit int) {
	q := r.URL.Query()
	skip, _ = strconv.Atoi(q.Get("skip"))
	limit, _ = strconv.Atoi(q.Get("limit"))
	return skip, limit
}
