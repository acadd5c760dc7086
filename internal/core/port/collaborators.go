package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// Recommender produces and persists a natural-language recommendation for
// an analysis. Implementations read related campaign rows for context
// themselves. A failed generation returns an error and leaves the analysis
// without a recommendation; callers treat that as non-fatal.
type Recommender interface {
	Generate(ctx context.Context, analysis domain.Analysis) (*domain.Recommendation, error)
}

// Notifier delivers an email notification for an analysis. Implementations
// must no-op when the analysis is already marked notified, and on success
// set the flag and append a notification log row.
type Notifier interface {
	Send(ctx context.Context, analysis domain.Analysis) error
}
