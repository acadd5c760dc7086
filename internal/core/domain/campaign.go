package domain

import "time"

// Campaign is one day of performance data for an advertising campaign on a
// single platform in a single region. Derived metrics (CTR, CPC, CPA) are
// computed upstream at ingestion time and stored alongside the raw counters;
// there is exactly one row per (name, platform, region, date).
type Campaign struct {
	ID           int64
	CampaignName string
	Platform     string
	Region       string
	Date         time.Time
	Impressions  int64
	Clicks       int64
	Conversions  int64
	Spend        float64
	CTR          float64 // click-through rate
	CPC          float64 // cost per click
	CPA          float64 // cost per acquisition
	CreatedAt    time.Time
}
