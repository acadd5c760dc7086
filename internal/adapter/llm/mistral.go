// Package llm generates recommendations through the Mistral chat
// completions API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"adpulse/internal/config/configs"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// ChatMessage is a message in a chat completion exchange.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the request body for the chat completions endpoint.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is the response from the chat completions endpoint.
type ChatResponse struct {
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// campaignSummary is the per-row context embedded into the prompt.
type campaignSummary struct {
	Name        string  `json:"name"`
	Platform    string  `json:"platform"`
	Region      string  `json:"region"`
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPA         float64 `json:"cpa"`
}

// Recommender implements port.Recommender against the Mistral API. Calls
// are spaced by a limiter owned by the instance, so several analyses fanned
// out in sequence queue up behind the configured minimum interval instead
// of tripping the upstream rate limit. There is no retry: a transport error
// or non-200 status means no recommendation for that analysis.
type Recommender struct {
	cfg        configs.LLM
	campaigns  port.CampaignRepository
	analyses   port.AnalysisRepository
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewRecommender creates a recommender with its own rate limiter.
func NewRecommender(
	cfg configs.LLM,
	campaigns port.CampaignRepository,
	analyses port.AnalysisRepository,
	logger *slog.Logger,
) *Recommender {
	return &Recommender{
		cfg:        cfg,
		campaigns:  campaigns,
		analyses:   analyses,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(cfg.MinCallInterval), 1),
		logger:     logger,
	}
}

// Generate builds a prompt from the analysis and its related campaign rows,
// calls the API and persists the returned text as a recommendation.
func (r *Recommender) Generate(ctx context.Context, analysis domain.Analysis) (*domain.Recommendation, error) {
	if r.cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: api key not configured")
	}

	prompt, err := r.buildPrompt(ctx, analysis)
	if err != nil {
		return nil, err
	}

	if err = r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	content, err := r.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	rec, err := r.analyses.InsertRecommendation(ctx, domain.Recommendation{
		AnalysisID: analysis.ID,
		Content:    content,
	})
	if err != nil {
		return nil, fmt.Errorf("store recommendation: %w", err)
	}
	r.logger.Info("recommendation generated", slog.Int64("analysis_id", analysis.ID))
	return rec, nil
}

func (r *Recommender) buildPrompt(ctx context.Context, analysis domain.Analysis) (string, error) {
	rows, err := r.campaigns.ListBetween(ctx, analysis.DateRangeStart, analysis.DateRangeEnd)
	if err != nil {
		return "", fmt.Errorf("load campaign context: %w", err)
	}

	summaries := make([]campaignSummary, len(rows))
	for i, c := range rows {
		summaries[i] = campaignSummary{
			Name:        c.CampaignName,
			Platform:    c.Platform,
			Region:      c.Region,
			Date:        c.Date.Format(time.DateOnly),
			Impressions: c.Impressions,
			Clicks:      c.Clicks,
			Conversions: c.Conversions,
			Spend:       c.Spend,
			CTR:         c.CTR,
			CPC:         c.CPC,
			CPA:         c.CPA,
		}
	}
	contextJSON, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are a marketing analytics expert. Based on the following analysis and campaign data, provide actionable recommendations.

ANALYSIS:
Type: %s
Metric: %s
Description: %s
Severity: %s
Current Value: %g
Expected Value: %g
Date Range: %s to %s

CAMPAIGN DATA:
%s

Provide 3 specific, actionable recommendations to address this issue. Each recommendation should:
1. Be specific to the platform, campaign, and region involved
2. Suggest a concrete action to take
3. Explain the expected outcome of taking this action

Format your response as 3 separate recommendations without numbering or bullet points.`,
		analysis.Type, analysis.Metric, analysis.Description, analysis.Severity,
		analysis.Value, analysis.ExpectedValue,
		analysis.DateRangeStart.Format(time.DateOnly), analysis.DateRangeEnd.Format(time.DateOnly),
		contextJSON,
	), nil
}

func (r *Recommender) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ChatRequest{
		Model:       r.cfg.Model,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm: status %d: %s", resp.StatusCode, raw)
	}

	var parsed ChatResponse
	if err = json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm: empty response")
	}
	return parsed.Choices[0].Message.Content, nil
}
