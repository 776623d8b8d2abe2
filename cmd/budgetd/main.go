package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/anusua-sen/smart-budget-app/internal/classify"
	"github.com/anusua-sen/smart-budget-app/internal/config"
	apphttp "github.com/anusua-sen/smart-budget-app/internal/http"
	applog "github.com/anusua-sen/smart-budget-app/internal/log"
	"github.com/anusua-sen/smart-budget-app/internal/services"
	"github.com/anusua-sen/smart-budget-app/internal/storage"
	"github.com/anusua-sen/smart-budget-app/internal/storage/memory"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: "budgetd",
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	var store storage.Store
	switch cfg.DataBackend {
	case "memory":
		store = memory.New()
		logger.Info("Initialized memory backend", "backend", cfg.DataBackend)
	default:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open SQLite database", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		store = repo
		logger.Info("Initialized SQLite backend", "backend", cfg.DataBackend, "path", cfg.SQLiteDBPath)
	}
	defer store.Close()

	classifier := classify.NewHTTPClassifier(cfg.ClassifierURL, cfg.ClassifierTimeout)
	ingestion := services.NewIngestionService(store, classifier)
	reports := services.NewReportService(store, store)

	srv := apphttp.NewServer(":"+cfg.Port, ingestion, reports, store, store, classifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting budget server", "port", cfg.Port, "classifier_url", cfg.ClassifierURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
