package domain

import "time"

// Analysis types.
const (
	AnalysisTypeAnomaly = "anomaly"
)

// Severity buckets. Low is part of the taxonomy but the current anomaly
// policy only ever emits medium and high.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Analysis is a persisted finding about campaign performance. For anomalies
// the date range collapses to a single day (start == end == the anomalous
// observation's date). Notified flips to true exactly once, after the first
// successful email send, and is never reset.
type Analysis struct {
	ID             int64
	Type           string
	Metric         string
	Description    string
	Severity       string
	Value          float64
	ExpectedValue  float64
	DateRangeStart time.Time
	DateRangeEnd   time.Time
	CreatedAt      time.Time
	Notified       bool
}

// AnalysisKey is the natural key identifying a logically unique analysis.
// Dates are held as DateOnly strings so the struct is safe to use as a map
// key independent of time.Time location and monotonic clock bits.
type AnalysisKey struct {
	Type   string
	Metric string
	Start  string
	End    string
}

// Key returns the natural key of the analysis.
func (a Analysis) Key() AnalysisKey {
	return AnalysisKey{
		Type:   a.Type,
		Metric: a.Metric,
		Start:  a.DateRangeStart.Format(time.DateOnly),
		End:    a.DateRangeEnd.Format(time.DateOnly),
	}
}
