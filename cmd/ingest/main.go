// Command ingest loads a CSV file of transactions, classifies them
// against the configured classifier service, and stores the results.
// It shares the service wiring with the HTTP server, so a file ingested
// here is indistinguishable from one uploaded over the API.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/anusua-sen/smart-budget-app/internal/classify"
	"github.com/anusua-sen/smart-budget-app/internal/config"
	applog "github.com/anusua-sen/smart-budget-app/internal/log"
	"github.com/anusua-sen/smart-budget-app/internal/services"
	"github.com/anusua-sen/smart-budget-app/internal/storage"
	"github.com/anusua-sen/smart-budget-app/internal/storage/memory"
)

func main() {
	file := flag.String("file", "", "path to the CSV file to ingest")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: "ingest",
	})
	applog.SetDefault(logger)

	if *file == "" {
		logger.Error("Missing -file flag")
		flag.Usage()
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	var store storage.Store
	switch cfg.DataBackend {
	case "memory":
		store = memory.New()
		logger.Warn("Using memory backend: ingested data will not survive this process")
	default:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open SQLite database", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		store = repo
	}
	defer store.Close()

	classifier := classify.NewHTTPClassifier(cfg.ClassifierURL, cfg.ClassifierTimeout)
	ingestion := services.NewIngestionService(store, classifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	f, err := os.Open(*file)
	if err != nil {
		logger.Error("Failed to open CSV file", "error", err, "file", *file)
		os.Exit(1)
	}
	defer f.Close()

	saved, err := ingestion.IngestCSV(ctx, f)
	if err != nil {
		logger.Error("Ingestion failed", "error", err, "file", *file)
		os.Exit(1)
	}
	logger.Info("Ingestion complete", "file", *file, "saved", saved)
}
