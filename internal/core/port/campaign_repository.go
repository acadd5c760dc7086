package port

import (
	"context"
	"time"

	"adpulse/internal/core/domain"
)

// CampaignFilter narrows campaign listings. Zero-value string fields and
// nil dates are ignored. Limit of 0 falls back to the repository default.
type CampaignFilter struct {
	CampaignName string
	Platform     string
	Region       string
	StartDate    *time.Time
	EndDate      *time.Time
	Skip         int
	Limit        int
}

// CampaignRepository is the outbound port for campaign performance data.
type CampaignRepository interface {
	// MaxDate returns the most recent campaign date, or nil when no
	// campaign data exists at all.
	MaxDate(ctx context.Context) (*time.Time, error)

	// ListBetween returns all rows with date in [start, end] inclusive,
	// sorted by (campaign_name, platform, region, date) ascending. The
	// sort order is a precondition of the grouping step.
	ListBetween(ctx context.Context, start, end time.Time) ([]domain.Campaign, error)

	// List returns campaigns matching the filter, newest first.
	List(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)

	// GetByID returns a campaign by id, or nil when not found.
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
}
