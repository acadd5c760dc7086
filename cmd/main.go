package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "adpulse/internal/adapter/http"
	"adpulse/internal/adapter/llm"
	"adpulse/internal/adapter/mail"
	"adpulse/internal/adapter/postgres"
	"adpulse/internal/adapter/usecase"
	"adpulse/internal/config"
	"adpulse/internal/db"
	"adpulse/internal/scheduler"
)

// main is the entry point of the adpulse service. It loads configuration,
// optionally runs database migrations and demo seeding, wires the
// repositories, collaborators and pipeline, then starts the scheduler and
// the HTTP server. On receiving a termination signal it gracefully shuts
// the server down.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("demo seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo campaign data seeded")
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	analysisRepo := postgres.NewAnalysisRepository(pool)

	recommender := llm.NewRecommender(cfg.LLM, campaignRepo, analysisRepo, logger)
	notifier := mail.NewNotifier(cfg.SMTP, analysisRepo, logger)

	analysisSvc := usecase.NewAnalysisUseCase(campaignRepo, analysisRepo, recommender, notifier, logger)
	campaignSvc := usecase.NewCampaignUseCase(campaignRepo)

	go scheduler.New(cfg.Analysis, analysisSvc, logger).Start(ctx)

	handler := httpadapter.NewHandler(analysisSvc, campaignSvc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
