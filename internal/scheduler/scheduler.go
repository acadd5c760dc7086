// Package scheduler triggers periodic analysis runs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"adpulse/internal/config/configs"
	"adpulse/internal/core/port"
)

// Scheduler invokes the analysis pipeline on a fixed cadence. The entry
// point it calls is idempotent, so overlapping manual and scheduled runs
// dedupe at the storage layer rather than here.
type Scheduler struct {
	cfg      configs.Analysis
	analyses port.AnalysisUseCase
	logger   *slog.Logger
}

// New creates a scheduler for the analysis usecase.
func New(cfg configs.Analysis, analyses port.AnalysisUseCase, logger *slog.Logger) *Scheduler {
	return &Scheduler{cfg: cfg, analyses: analyses, logger: logger}
}

// Start blocks, firing a run every configured interval until the context
// is cancelled. Run failures are logged; the schedule keeps going.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started", slog.Duration("interval", s.cfg.Interval))

	if s.cfg.RunOnStart {
		s.fire(ctx)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.fire(ctx)
		}
	}
}

func (s *Scheduler) fire(ctx context.Context) {
	if err := s.analyses.Run(ctx); err != nil {
		s.logger.Error("scheduled analysis run failed", slog.Any("error", err))
	}
}
