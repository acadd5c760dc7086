package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

// spikeRows is a single campaign group whose CTR triples on the last day,
// producing one high-severity candidate. CPC and CPA stay flat.
func spikeRows(lastCTR float64) []domain.Campaign {
	rows := make([]domain.Campaign, 3)
	for i := range rows {
		rows[i] = domain.Campaign{
			CampaignName: "Summer Sale",
			Platform:     "google",
			Region:       "us",
			Date:         day(8 + i),
			CTR:          0.10,
			CPC:          1.0,
			CPA:          10.0,
		}
	}
	rows[2].CTR = lastCTR
	return rows
}

type pipelineMocks struct {
	campaigns   *mocks.MockCampaignRepository
	analyses    *mocks.MockAnalysisRepository
	recommender *mocks.MockRecommender
	notifier    *mocks.MockNotifier
}

func newPipeline(t *testing.T) (*AnalysisUseCase, pipelineMocks) {
	m := pipelineMocks{
		campaigns:   mocks.NewMockCampaignRepository(t),
		analyses:    mocks.NewMockAnalysisRepository(t),
		recommender: mocks.NewMockRecommender(t),
		notifier:    mocks.NewMockNotifier(t),
	}
	return NewAnalysisUseCase(m.campaigns, m.analyses, m.recommender, m.notifier, testLogger()), m
}

// TestRunNoData ensures an empty campaigns table terminates the run cleanly
// without touching detection or storage.
func TestRunNoData(t *testing.T) {
	svc, m := newPipeline(t)
	m.campaigns.EXPECT().MaxDate(mock.Anything).Return(nil, nil)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
}

// TestRunPersistsAndNotifies walks the full happy path: a high-severity
// anomaly is detected over the 10-day window, persisted, recommended and
// notified.
func TestRunPersistsAndNotifies(t *testing.T) {
	svc, m := newPipeline(t)

	maxDate := day(10)
	rows := spikeRows(0.30)

	m.campaigns.EXPECT().MaxDate(mock.Anything).Return(&maxDate, nil)
	m.campaigns.EXPECT().
		ListBetween(mock.Anything, maxDate.AddDate(0, 0, -9), maxDate).
		Return(rows, nil)

	m.analyses.EXPECT().FindByKeys(mock.Anything, mock.Anything).Return(nil, nil)

	var inserted []domain.Analysis
	m.analyses.EXPECT().
		InsertBatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, batch []domain.Analysis) ([]domain.Analysis, error) {
			inserted = batch
			out := make([]domain.Analysis, len(batch))
			for i, a := range batch {
				a.ID = int64(i + 1)
				out[i] = a
			}
			return out, nil
		})

	m.recommender.EXPECT().Generate(mock.Anything, mock.Anything).Return(&domain.Recommendation{ID: 1}, nil)
	m.notifier.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(inserted) != 1 {
		t.Fatalf("expected 1 inserted analysis, got %d", len(inserted))
	}
	a := inserted[0]
	if a.Type != domain.AnalysisTypeAnomaly || a.Metric != "ctr" {
		t.Fatalf("unexpected analysis: %+v", a)
	}
	if a.Severity != domain.SeverityHigh {
		t.Fatalf("expected high severity, got %s", a.Severity)
	}
	if !a.DateRangeStart.Equal(day(10)) || !a.DateRangeEnd.Equal(day(10)) {
		t.Fatalf("expected single-day range on day 10, got %v..%v", a.DateRangeStart, a.DateRangeEnd)
	}
}

// TestRunIsIdempotent ensures a second pass over unchanged data inserts
// nothing and triggers no fan-out: the natural key already exists.
func TestRunIsIdempotent(t *testing.T) {
	svc, m := newPipeline(t)

	maxDate := day(10)
	m.campaigns.EXPECT().MaxDate(mock.Anything).Return(&maxDate, nil)
	m.campaigns.EXPECT().ListBetween(mock.Anything, mock.Anything, mock.Anything).Return(spikeRows(0.30), nil)

	existing := domain.Analysis{
		ID:             7,
		Type:           domain.AnalysisTypeAnomaly,
		Metric:         "ctr",
		DateRangeStart: day(10),
		DateRangeEnd:   day(10),
	}
	m.analyses.EXPECT().FindByKeys(mock.Anything, mock.Anything).Return([]domain.Analysis{existing}, nil)

	// No InsertBatch, Generate or Send expectations: any call fails the test.
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
}

// TestRunMediumSeverityNoNotification ensures the notifier is only invoked
// for high-severity analyses.
func TestRunMediumSeverityNoNotification(t *testing.T) {
	svc, m := newPipeline(t)

	maxDate := day(10)
	m.campaigns.EXPECT().MaxDate(mock.Anything).Return(&maxDate, nil)
	// 80% deviation: anomaly, but medium.
	m.campaigns.EXPECT().ListBetween(mock.Anything, mock.Anything, mock.Anything).Return(spikeRows(0.18), nil)
	m.analyses.EXPECT().FindByKeys(mock.Anything, mock.Anything).Return(nil, nil)
	m.analyses.EXPECT().
		InsertBatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, batch []domain.Analysis) ([]domain.Analysis, error) {
			return batch, nil
		})
	m.recommender.EXPECT().Generate(mock.Anything, mock.Anything).Return(&domain.Recommendation{}, nil)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
}

// TestRunCollaboratorFailuresAreIsolated ensures failing collaborators are
// logged and swallowed: the run still succeeds.
func TestRunCollaboratorFailuresAreIsolated(t *testing.T) {
	svc, m := newPipeline(t)

	maxDate := day(10)
	m.campaigns.EXPECT().MaxDate(mock.Anything).Return(&maxDate, nil)
	m.campaigns.EXPECT().ListBetween(mock.Anything, mock.Anything, mock.Anything).Return(spikeRows(0.30), nil)
	m.analyses.EXPECT().FindByKeys(mock.Anything, mock.Anything).Return(nil, nil)
	m.analyses.EXPECT().
		InsertBatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, batch []domain.Analysis) ([]domain.Analysis, error) {
			return batch, nil
		})

	m.recommender.EXPECT().Generate(mock.Anything, mock.Anything).Return(nil, errors.New("api down"))
	m.notifier.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("collaborator failure must not fail the run: %v", err)
	}
}

// TestRunStorageFailurePropagates ensures storage faults abort the run.
func TestRunStorageFailurePropagates(t *testing.T) {
	svc, m := newPipeline(t)
	m.campaigns.EXPECT().MaxDate(mock.Anything).Return(nil, errors.New("connection refused"))

	if err := svc.Run(context.Background()); err == nil {
		t.Fatal("expected storage error to propagate")
	}
}

// TestNotifyUnknownAnalysis ensures notifying a missing id errors without
// invoking the notifier.
func TestNotifyUnknownAnalysis(t *testing.T) {
	svc, m := newPipeline(t)
	m.analyses.EXPECT().GetByID(mock.Anything, int64(42)).Return(nil, nil)

	if err := svc.Notify(context.Background(), 42); err == nil {
		t.Fatal("expected error for unknown analysis")
	}
}

// TestNotifyDelegates ensures on-demand notification forwards the stored
// analysis to the notifier.
func TestNotifyDelegates(t *testing.T) {
	svc, m := newPipeline(t)

	analysis := domain.Analysis{ID: 42, Severity: domain.SeverityHigh}
	m.analyses.EXPECT().GetByID(mock.Anything, int64(42)).Return(&analysis, nil)
	m.notifier.EXPECT().Send(mock.Anything, analysis).Return(nil)

	if err := svc.Notify(context.Background(), 42); err != nil {
		t.Fatalf("Notify error: %v", err)
	}
}
