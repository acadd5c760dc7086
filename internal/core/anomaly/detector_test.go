package anomaly

import (
	"math"
	"reflect"
	"testing"
	"time"

	"adpulse/internal/core/domain"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

// row builds a campaign row for the default test group. cpc and cpa stay
// flat so tests can probe a single metric in isolation.
func row(d int, ctr, cpc, cpa float64) domain.Campaign {
	return domain.Campaign{
		CampaignName: "Summer Sale",
		Platform:     "google",
		Region:       "us",
		Date:         day(d),
		CTR:          ctr,
		CPC:          cpc,
		CPA:          cpa,
	}
}

func TestDetectShortGroupProducesNothing(t *testing.T) {
	rows := []domain.Campaign{
		row(1, 0.10, 1.0, 10.0),
		row(2, 0.90, 9.0, 90.0), // wild jump, but only the second observation
	}
	if got := Detect(rows); len(got) != 0 {
		t.Fatalf("expected no candidates for a 2-row group, got %d", len(got))
	}
}

func TestDetectSkipsHistorySeed(t *testing.T) {
	// Third row triples CTR; only that observation may trigger even though
	// the second row already deviates from the first.
	rows := []domain.Campaign{
		row(1, 0.10, 1.0, 10.0),
		row(2, 0.10, 1.0, 10.0),
		row(3, 0.30, 1.0, 10.0),
	}
	got := Detect(rows)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.Metric != MetricCTR {
		t.Fatalf("expected ctr candidate, got %s", c.Metric)
	}
	if c.Severity != domain.SeverityHigh {
		t.Fatalf("expected high severity, got %s", c.Severity)
	}
	if c.Value != 0.30 || c.ExpectedValue != 0.10 {
		t.Fatalf("unexpected value/expected: %v/%v", c.Value, c.ExpectedValue)
	}
	if !c.Date.Equal(day(3)) {
		t.Fatalf("unexpected candidate date: %v", c.Date)
	}
	want := "Unusual increase in CTR (200.0%) for Summer Sale on google in us"
	if c.Description != want {
		t.Fatalf("unexpected description:\n got %q\nwant %q", c.Description, want)
	}
}

func TestDetectBelowThreshold(t *testing.T) {
	rows := []domain.Campaign{
		row(1, 0.10, 1.0, 10.0),
		row(2, 0.10, 1.0, 10.0),
		row(3, 0.14, 1.0, 10.0), // 40% deviation
	}
	if got := Detect(rows); len(got) != 0 {
		t.Fatalf("expected no candidates at 40%% deviation, got %d", len(got))
	}
}

func TestDetectSeverityBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		third    float64
		want     int
		severity string
	}{
		{"exactly 50 percent does not trigger", 1.5, 0, ""},
		{"exactly 100 percent is medium", 2.0, 1, domain.SeverityMedium},
		{"just above 100 percent is high", 2.001, 1, domain.SeverityHigh},
		{"decrease counts too", 0.25, 1, domain.SeverityMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := []domain.Campaign{
				row(1, 0.10, 1.0, 10.0),
				row(2, 0.10, 1.0, 10.0),
				row(3, 0.10, tc.third, 10.0),
			}
			got := Detect(rows)
			if len(got) != tc.want {
				t.Fatalf("expected %d candidates, got %d", tc.want, len(got))
			}
			if tc.want == 1 {
				if got[0].Metric != MetricCPC {
					t.Fatalf("expected cpc candidate, got %s", got[0].Metric)
				}
				if got[0].Severity != tc.severity {
					t.Fatalf("expected %s severity, got %s", tc.severity, got[0].Severity)
				}
			}
		})
	}
}

func TestDetectZeroBaseline(t *testing.T) {
	// All-zero CPA history: baseline is zero, the ratio is undefined, the
	// observation is skipped without panicking.
	rows := []domain.Campaign{
		row(1, 0.10, 1.0, 0),
		row(2, 0.10, 1.0, 0),
		row(3, 0.10, 1.0, 25.0),
	}
	if got := Detect(rows); len(got) != 0 {
		t.Fatalf("expected no candidates with zero baseline, got %d", len(got))
	}
}

func TestDetectGrowingBaseline(t *testing.T) {
	// Baseline at position i is the mean of all earlier observations, not
	// a fixed trailing window: at the fourth row the history is three rows.
	rows := []domain.Campaign{
		row(1, 0.10, 1.0, 10.0),
		row(2, 0.10, 1.0, 10.0),
		row(3, 0.10, 1.0, 10.0),
		row(4, 0.25, 1.0, 10.0),
	}
	got := Detect(rows)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if math.Abs(got[0].ExpectedValue-0.10) > 1e-9 {
		t.Fatalf("expected baseline 0.10, got %v", got[0].ExpectedValue)
	}
	if got[0].Severity != domain.SeverityHigh { // ratio 1.5
		t.Fatalf("expected high severity, got %s", got[0].Severity)
	}
}

func TestDetectMetricOrderWithinObservation(t *testing.T) {
	// All three metrics spike on the same day; candidates come out in the
	// fixed ctr, cpc, cpa order.
	rows := []domain.Campaign{
		row(1, 0.10, 1.0, 10.0),
		row(2, 0.10, 1.0, 10.0),
		row(3, 0.30, 3.0, 30.0),
	}
	got := Detect(rows)
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	for i, want := range Metrics {
		if got[i].Metric != want {
			t.Fatalf("candidate %d: expected %s, got %s", i, want, got[i].Metric)
		}
	}
}

func TestDetectDeterministic(t *testing.T) {
	rows := []domain.Campaign{
		row(1, 0.10, 1.0, 10.0),
		row(2, 0.12, 1.1, 11.0),
		row(3, 0.30, 3.0, 5.0),
		row(4, 0.11, 0.2, 30.0),
	}
	first := Detect(rows)
	second := Detect(rows)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("detection is not deterministic:\n first %v\nsecond %v", first, second)
	}
}

func TestCandidateKey(t *testing.T) {
	c := Candidate{Metric: MetricCPC, Date: day(7)}
	key := c.Key()
	want := domain.AnalysisKey{
		Type:   domain.AnalysisTypeAnomaly,
		Metric: "cpc",
		Start:  "2025-03-07",
		End:    "2025-03-07",
	}
	if key != want {
		t.Fatalf("unexpected key: %+v", key)
	}
}
