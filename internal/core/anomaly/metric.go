package anomaly

import "adpulse/internal/core/domain"

// Metric names the campaign metrics the detector tracks.
type Metric string

const (
	MetricCTR Metric = "ctr"
	MetricCPC Metric = "cpc"
	MetricCPA Metric = "cpa"
)

// Metrics is the fixed evaluation order. Candidate ordering depends on it,
// so tests can rely on byte-identical output across runs.
var Metrics = []Metric{MetricCTR, MetricCPC, MetricCPA}

// Value extracts the named metric from a campaign row.
func Value(c domain.Campaign, m Metric) float64 {
	switch m {
	case MetricCTR:
		return c.CTR
	case MetricCPC:
		return c.CPC
	case MetricCPA:
		return c.CPA
	default:
		return 0
	}
}
