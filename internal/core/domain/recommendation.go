package domain

import "time"

// Recommendation is free-text, LLM-generated advice attached to an analysis.
// An analysis may have zero recommendations when generation failed; that is
// tolerated, not an error state.
type Recommendation struct {
	ID         int64
	AnalysisID int64
	Content    string
	CreatedAt  time.Time
}
