package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

type analysisDTO struct {
	ID             int64   `json:"id"`
	Type           string  `json:"type"`
	Metric         string  `json:"metric"`
	Description    string  `json:"description"`
	Severity       string  `json:"severity"`
	Value          float64 `json:"value"`
	ExpectedValue  float64 `json:"expected_value"`
	DateRangeStart string  `json:"date_range_start"`
	DateRangeEnd   string  `json:"date_range_end"`
	CreatedAt      string  `json:"created_at"`
	Notified       bool    `json:"notified"`
}

type analysisDetailDTO struct {
	analysisDTO
	Recommendations []recommendationDTO `json:"recommendations"`
}

func toAnalysisDTO(a domain.Analysis) analysisDTO {
	return analysisDTO{
		ID:             a.ID,
		Type:           a.Type,
		Metric:         a.Metric,
		Description:    a.Description,
		Severity:       a.Severity,
		Value:          a.Value,
		ExpectedValue:  a.ExpectedValue,
		DateRangeStart: a.DateRangeStart.Format(time.DateOnly),
		DateRangeEnd:   a.DateRangeEnd.Format(time.DateOnly),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		Notified:       a.Notified,
	}
}

// handleListAnalyses returns analyses filtered by the optional type,
// metric and severity query parameters, with skip/limit paging.
func (h *Handler) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.AnalysisFilter{
		Type:     q.Get("type"),
		Metric:   q.Get("metric"),
		Severity: q.Get("severity"),
	}
	f.Skip, f.Limit = paging(r)

	analyses, err := h.analyses.List(r.Context(), f)
	if err != nil {
		h.logger.Error("list analyses error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]analysisDTO, len(analyses))
	for i, a := range analyses {
		out[i] = toAnalysisDTO(a)
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleGetAnalysis returns one analysis including its recommendations.
func (h *Handler) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}
	analysis, recs, err := h.analyses.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get analysis error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if analysis == nil {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return
	}

	detail := analysisDetailDTO{
		analysisDTO:     toAnalysisDTO(*analysis),
		Recommendations: make([]recommendationDTO, len(recs)),
	}
	for i, rec := range recs {
		detail.Recommendations[i] = toRecommendationDTO(rec)
	}
	h.writeJSON(w, http.StatusOK, detail)
}

// handleRunAnalysis triggers a pipeline run in the background and responds
// immediately. The run is detached from the request context so a closed
// connection does not abort it.
func (h *Handler) handleRunAnalysis(w http.ResponseWriter, r *http.Request) {
	go func() {
		if err := h.analyses.Run(context.Background()); err != nil {
			h.logger.Error("background analysis run failed", slog.Any("error", err))
		}
	}()
	h.writeJSON(w, http.StatusAccepted, map[string]string{"message": "Analysis started in background"})
}

// handleNotify sends the notification email for one analysis in the
// background. Responds 404 when the analysis does not exist.
func (h *Handler) handleNotify(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}
	analysis, _, err := h.analyses.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get analysis error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if analysis == nil {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return
	}

	go func() {
		if err := h.analyses.Notify(context.Background(), id); err != nil {
			h.logger.Error("background notify failed",
				slog.Int64("analysis_id", id), slog.Any("error", err))
		}
	}()
	h.writeJSON(w, http.StatusAccepted, map[string]string{"message": "Notification queued"})
}
