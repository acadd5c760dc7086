package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// AnalysisFilter narrows analysis listings. Empty strings are ignored.
type AnalysisFilter struct {
	Type     string
	Metric   string
	Severity string
	Skip     int
	Limit    int
}

// RecommendationFilter narrows recommendation listings.
type RecommendationFilter struct {
	AnalysisID *int64
	Skip       int
	Limit      int
}

// AnalysisRepository persists analyses and their owned recommendation and
// notification rows.
type AnalysisRepository interface {
	// FindByKeys returns every stored analysis whose natural key is in
	// keys. One bulk query regardless of len(keys); empty keys returns
	// nothing without touching storage.
	FindByKeys(ctx context.Context, keys []domain.AnalysisKey) ([]domain.Analysis, error)

	// InsertBatch stores the analyses in a single transaction and
	// returns them with ids and created_at populated, in input order.
	InsertBatch(ctx context.Context, analyses []domain.Analysis) ([]domain.Analysis, error)

	// List returns analyses matching the filter, newest first.
	List(ctx context.Context, f AnalysisFilter) ([]domain.Analysis, error)

	// GetByID returns an analysis by id, or nil when not found.
	GetByID(ctx context.Context, id int64) (*domain.Analysis, error)

	// MarkNotified sets the notified flag on an analysis. The flag is
	// never cleared.
	MarkNotified(ctx context.Context, id int64) error

	// InsertRecommendation stores one recommendation and returns it with
	// id and created_at populated.
	InsertRecommendation(ctx context.Context, rec domain.Recommendation) (*domain.Recommendation, error)

	// ListRecommendations returns recommendations matching the filter,
	// newest first.
	ListRecommendations(ctx context.Context, f RecommendationFilter) ([]domain.Recommendation, error)

	// GetRecommendation returns a recommendation by id, or nil when not
	// found.
	GetRecommendation(ctx context.Context, id int64) (*domain.Recommendation, error)

	// InsertNotification appends one row to the notification log.
	InsertNotification(ctx context.Context, n domain.Notification) error
}
