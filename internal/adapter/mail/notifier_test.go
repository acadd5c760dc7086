package mail

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"adpulse/internal/config/configs"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port/mocks"
)

func TestSendAlreadyNotifiedIsNoop(t *testing.T) {
	// No repository expectations: the guard must short-circuit before any
	// storage or SMTP work.
	repo := mocks.NewMockAnalysisRepository(t)
	n := NewNotifier(configs.SMTP{}, repo, slog.New(slog.DiscardHandler))

	err := n.Send(context.Background(), domain.Analysis{ID: 1, Notified: true})
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
}

func TestRenderBody(t *testing.T) {
	analysis := domain.Analysis{
		Type:           domain.AnalysisTypeAnomaly,
		Metric:         "cpc",
		Description:    "Unusual increase in CPC (120.0%) for Summer Sale on google in us",
		Severity:       domain.SeverityHigh,
		Value:          2.2,
		ExpectedValue:  1.0,
		DateRangeStart: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DateRangeEnd:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	body := renderBody(analysis, nil)
	for _, want := range []string{
		"high",
		analysis.Description,
		"2.2000",
		"1.0000",
		"2025-03-10",
		"Recommendations are being generated",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}

	withRec := renderBody(analysis, []domain.Recommendation{{Content: "Lower the bid cap on google us."}})
	if !strings.Contains(withRec, "Lower the bid cap on google us.") {
		t.Fatal("body missing recommendation content")
	}
	if strings.Contains(withRec, "Recommendations are being generated") {
		t.Fatal("placeholder should be absent when recommendations exist")
	}
}
