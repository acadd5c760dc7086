package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

type campaignDTO struct {
	ID           int64   `json:"id"`
	CampaignName string  `json:"campaign_name"`
	Platform     string  `json:"platform"`
	Region       string  `json:"region"`
	Date         string  `json:"date"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Conversions  int64   `json:"conversions"`
	Spend        float64 `json:"spend"`
	CTR          float64 `json:"ctr"`
	CPC          float64 `json:"cpc"`
	CPA          float64 `json:"cpa"`
	CreatedAt    string  `json:"created_at"`
}

func toCampaignDTO(c domain.Campaign) campaignDTO {
	return campaignDTO{
		ID:           c.ID,
		CampaignName: c.CampaignName,
		Platform:     c.Platform,
		Region:       c.Region,
		Date:         c.Date.Format(time.DateOnly),
		Impressions:  c.Impressions,
		Clicks:       c.Clicks,
		Conversions:  c.Conversions,
		Spend:        c.Spend,
		CTR:          c.CTR,
		CPC:          c.CPC,
		CPA:          c.CPA,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}

// handleListCampaigns returns campaigns filtered by the optional
// campaign_name, platform, region, start_date and end_date query
// parameters, with skip/limit paging. Dates use the 2006-01-02 form.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.CampaignFilter{
		CampaignName: q.Get("campaign_name"),
		Platform:     q.Get("platform"),
		Region:       q.Get("region"),
	}
	f.Skip, f.Limit = paging(r)

	if s := q.Get("start_date"); s != "" {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid start_date", http.StatusBadRequest)
			return
		}
		f.StartDate = &d
	}
	if s := q.Get("end_date"); s != "" {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}
		f.EndDate = &d
	}

	campaigns, err := h.campaigns.List(r.Context(), f)
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]campaignDTO, len(campaigns))
	for i, c := range campaigns {
		out[i] = toCampaignDTO(c)
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleGetCampaign returns a single campaign or 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}
	campaign, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if campaign == nil {
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignDTO(*campaign))
}
