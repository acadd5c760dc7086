package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"adpulse/internal/core/anomaly"
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// windowDays is the size of the analysis window ending at the most recent
// campaign date.
const windowDays = 10

// AnalysisUseCase drives the anomaly pipeline and serves the analysis read
// side. A run is sequential: determine window, detect, deduplicate, persist,
// then fan out to the recommender and notifier per new analysis.
type AnalysisUseCase struct {
	campaigns   port.CampaignRepository
	analyses    port.AnalysisRepository
	recommender port.Recommender
	notifier    port.Notifier
	logger      *slog.Logger
}

// NewAnalysisUseCase wires the pipeline with its storage and collaborators.
func NewAnalysisUseCase(
	campaigns port.CampaignRepository,
	analyses port.AnalysisRepository,
	recommender port.Recommender,
	notifier port.Notifier,
	logger *slog.Logger,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		campaigns:   campaigns,
		analyses:    analyses,
		recommender: recommender,
		notifier:    notifier,
		logger:      logger,
	}
}

// Run executes one full pipeline pass. Storage errors abort the run and
// propagate; recommender and notifier failures are logged per analysis and
// never abort the remaining fan-out. Re-running over unchanged data inserts
// nothing thanks to the natural-key dedup.
func (u *AnalysisUseCase) Run(ctx context.Context) error {
	log := u.logger.With(slog.String("run_id", uuid.NewString()))
	log.Info("starting campaign analysis")

	maxDate, err := u.campaigns.MaxDate(ctx)
	if err != nil {
		return fmt.Errorf("query max campaign date: %w", err)
	}
	if maxDate == nil {
		log.Warn("no campaign data found")
		return nil
	}
	start := maxDate.AddDate(0, 0, -(windowDays - 1))

	rows, err := u.campaigns.ListBetween(ctx, start, *maxDate)
	if err != nil {
		return fmt.Errorf("load campaigns in window: %w", err)
	}

	candidates := anomaly.Detect(rows)
	created, err := u.reconcile(ctx, candidates)
	if err != nil {
		return err
	}

	for _, analysis := range created {
		if _, err := u.recommender.Generate(ctx, analysis); err != nil {
			log.Error("recommendation generation failed",
				slog.Int64("analysis_id", analysis.ID), slog.Any("error", err))
		}
		if analysis.Severity == domain.SeverityHigh {
			if err := u.notifier.Send(ctx, analysis); err != nil {
				log.Error("notification send failed",
					slog.Int64("analysis_id", analysis.ID), slog.Any("error", err))
			}
		}
	}

	log.Info("analysis completed",
		slog.Int("candidates", len(candidates)), slog.Int("created", len(created)))
	return nil
}

// reconcile drops candidates whose natural key is already stored and
// persists the survivors in one batch. The existence check is a single
// bulk query regardless of candidate count.
func (u *AnalysisUseCase) reconcile(ctx context.Context, candidates []anomaly.Candidate) ([]domain.Analysis, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	keys := make([]domain.AnalysisKey, len(candidates))
	for i, c := range candidates {
		keys[i] = c.Key()
	}
	existing, err := u.analyses.FindByKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("lookup existing analyses: %w", err)
	}
	seen := make(map[domain.AnalysisKey]struct{}, len(existing))
	for _, a := range existing {
		seen[a.Key()] = struct{}{}
	}

	var fresh []domain.Analysis
	for _, c := range candidates {
		if _, ok := seen[c.Key()]; ok {
			continue
		}
		fresh = append(fresh, domain.Analysis{
			Type:           domain.AnalysisTypeAnomaly,
			Metric:         string(c.Metric),
			Description:    c.Description,
			Severity:       c.Severity,
			Value:          c.Value,
			ExpectedValue:  c.ExpectedValue,
			DateRangeStart: c.Date,
			DateRangeEnd:   c.Date,
		})
	}
	if len(fresh) == 0 {
		return nil, nil
	}

	created, err := u.analyses.InsertBatch(ctx, fresh)
	if err != nil {
		return nil, fmt.Errorf("insert analyses: %w", err)
	}
	return created, nil
}

// List returns analyses matching the filter, newest first.
func (u *AnalysisUseCase) List(ctx context.Context, f port.AnalysisFilter) ([]domain.Analysis, error) {
	return u.analyses.List(ctx, f)
}

// Get returns an analysis together with its recommendations. The analysis
// pointer is nil when the id is unknown.
func (u *AnalysisUseCase) Get(ctx context.Context, id int64) (*domain.Analysis, []domain.Recommendation, error) {
	analysis, err := u.analyses.GetByID(ctx, id)
	if err != nil || analysis == nil {
		return analysis, nil, err
	}
	recs, err := u.analyses.ListRecommendations(ctx, port.RecommendationFilter{AnalysisID: &id})
	if err != nil {
		return nil, nil, err
	}
	return analysis, recs, nil
}

// Notify sends the notification email for one analysis on demand.
func (u *AnalysisUseCase) Notify(ctx context.Context, id int64) error {
	analysis, err := u.analyses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if analysis == nil {
		return fmt.Errorf("analysis %d not found", id)
	}
	return u.notifier.Send(ctx, *analysis)
}

// ListRecommendations returns recommendations matching the filter.
func (u *AnalysisUseCase) ListRecommendations(ctx context.Context, f port.RecommendationFilter) ([]domain.Recommendation, error) {
	return u.analyses.ListRecommendations(ctx, f)
}

// GetRecommendation returns a recommendation by id, or nil when not found.
func (u *AnalysisUseCase) GetRecommendation(ctx context.Context, id int64) (*domain.Recommendation, error) {
	return u.analyses.GetRecommendation(ctx, id)
}
