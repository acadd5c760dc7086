package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// AnalysisUseCase is the primary inbound port: it drives the detection
// pipeline and serves the analysis read side.
type AnalysisUseCase interface {
	// Run executes one full pipeline pass: window determination,
	// detection, deduplication, persistence and collaborator fan-out.
	// It is idempotent over unchanged data and safe to invoke manually.
	// Only storage failures are returned; collaborator failures are
	// logged and swallowed.
	Run(ctx context.Context) error

	// List returns analyses matching the filter, newest first.
	List(ctx context.Context, f AnalysisFilter) ([]domain.Analysis, error)

	// Get returns an analysis and its recommendations, or a nil analysis
	// when not found.
	Get(ctx context.Context, id int64) (*domain.Analysis, []domain.Recommendation, error)

	// Notify sends the notification email for one analysis on demand.
	Notify(ctx context.Context, id int64) error

	// ListRecommendations returns recommendations matching the filter.
	ListRecommendations(ctx context.Context, f RecommendationFilter) ([]domain.Recommendation, error)

	// GetRecommendation returns a recommendation by id, or nil when not
	// found.
	GetRecommendation(ctx context.Context, id int64) (*domain.Recommendation, error)
}

// CampaignUseCase serves the campaign read side.
type CampaignUseCase interface {
	// List returns campaigns matching the filter, newest first.
	List(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)

	// Get returns a campaign by id, or nil when not found.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
}
