package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

type recommendationDTO struct {
	ID         int64  `json:"id"`
	AnalysisID int64  `json:"analysis_id"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

func toRecommendationDTO(rec domain.Recommendation) recommendationDTO {
	return recommendationDTO{
		ID:         rec.ID,
		AnalysisID: rec.AnalysisID,
		Content:    rec.Content,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
}

// handleListRecommendations returns recommendations, optionally filtered
// by analysis_id, with skip/limit paging.
func (h *Handler) handleListRecommendations(w http.ResponseWriter, r *http.Request) {
	var f port.RecommendationFilter
	f.Skip, f.Limit = paging(r)

	if s := r.URL.Query().Get("analysis_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "invalid analysis_id", http.StatusBadRequest)
			return
		}
		f.AnalysisID = &id
	}

	recs, err := h.analyses.ListRecommendations(r.Context(), f)
	if err != nil {
		h.logger.Error("list recommendations error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]recommendationDTO, len(recs))
	for i, rec := range recs {
		out[i] = toRecommendationDTO(rec)
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleGetRecommendation returns a single recommendation or 404.
func (h *Handler) handleGetRecommendation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}
	rec, err := h.analyses.GetRecommendation(r.Context(), id)
	if err != nil {
		h.logger.Error("get recommendation error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "recommendation not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, toRecommendationDTO(*rec))
}
