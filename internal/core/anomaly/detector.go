package anomaly

import (
	"fmt"
	"math"
	"strings"
	"time"

	"adpulse/internal/core/domain"
)

// Detection policy: for every observation from the third one onward, the
// baseline is the arithmetic mean of all strictly earlier observations in
// the group. A deviation of more than 50% from the baseline is an anomaly;
// more than 100% escalates to high severity.
const (
	// minObservations is the shortest series that can produce an anomaly.
	// The first two observations only seed the history.
	minObservations = 3

	anomalyRatio = 0.5
	highRatio    = 1.0
)

// Candidate is a detected anomaly before deduplication and persistence.
type Candidate struct {
	Metric        Metric
	Description   string
	Severity      string
	Value         float64
	ExpectedValue float64
	Date          time.Time
}

// Key returns the natural key the candidate would persist under.
func (c Candidate) Key() domain.AnalysisKey {
	day := c.Date.Format(time.DateOnly)
	return domain.AnalysisKey{
		Type:   domain.AnalysisTypeAnomaly,
		Metric: string(c.Metric),
		Start:  day,
		End:    day,
	}
}

// Detect scores every campaign group in the window and returns candidates
// ordered by group, then by observation date, then by metric in the fixed
// Metrics order. Output is deterministic for identical input.
func Detect(rows []domain.Campaign) []Candidate {
	var out []Candidate
	for _, g := range GroupCampaigns(rows) {
		out = append(out, scoreGroup(g)...)
	}
	return out
}

func scoreGroup(g Group) []Candidate {
	if len(g.Records) < minObservations {
		return nil
	}

	var out []Candidate
	for i := minObservations - 1; i < len(g.Records); i++ {
		for _, m := range Metrics {
			if c, ok := score(g, i, m); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// score compares observation i against the mean of observations [0, i).
// A zero baseline (a uniformly zero history, e.g. no spend) cannot be
// scored and is skipped.
func score(g Group, i int, m Metric) (Candidate, bool) {
	var sum float64
	for _, rec := range g.Records[:i] {
		sum += Value(rec, m)
	}
	baseline := sum / float64(i)
	if baseline == 0 {
		return Candidate{}, false
	}

	current := Value(g.Records[i], m)
	ratio := math.Abs(current-baseline) / baseline
	if ratio <= anomalyRatio {
		return Candidate{}, false
	}

	severity := domain.SeverityMedium
	if ratio > highRatio {
		severity = domain.SeverityHigh
	}
	direction := "decrease"
	if current > baseline {
		direction = "increase"
	}

	return Candidate{
		Metric:   m,
		Severity: severity,
		Description: fmt.Sprintf("Unusual %s in %s (%.1f%%) for %s on %s in %s",
			direction, strings.ToUpper(string(m)), ratio*100, g.Key.Name, g.Key.Platform, g.Key.Region),
		Value:         current,
		ExpectedValue: baseline,
		Date:          g.Records[i].Date,
	}, true
}
