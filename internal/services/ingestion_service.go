// Package services orchestrates ingestion and reporting over the
// storage and classifier boundaries. Services hold no state beyond
// their injected handles; each request runs start to finish in its own
// context.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/anusua-sen/smart-budget-app/internal/classify"
	"github.com/anusua-sen/smart-budget-app/internal/core"
	"github.com/anusua-sen/smart-budget-app/internal/ingest"
	"github.com/anusua-sen/smart-budget-app/internal/storage"
)

// IngestionService runs the ingestion pipeline: validate the batch,
// classify the descriptions, persist the transactions atomically. A
// failure at any stage persists nothing.
type IngestionService struct {
	store      storage.TransactionStore
	classifier classify.Classifier
	now        func() time.Time
}

func NewIngestionService(store storage.TransactionStore, classifier classify.Classifier) *IngestionService {
	return &IngestionService{
		store:      store,
		classifier: classifier,
		now:        time.Now,
	}
}

// IngestCSV reads a CSV batch and ingests it.
func (s *IngestionService) IngestCSV(ctx context.Context, r io.Reader) (int, error) {
	tbl, err := ingest.ReadTable(r)
	if err != nil {
		return 0, err
	}
	return s.Ingest(ctx, tbl)
}

// Ingest validates, classifies, and persists one raw batch, returning
// the number of transactions saved.
func (s *IngestionService) Ingest(ctx context.Context, tbl ingest.Table) (int, error) {
	candidates, err := ingest.Validate(tbl, s.now())
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	descriptions := make([]string, len(candidates))
	for i, c := range candidates {
		descriptions[i] = c.Description
	}

	labels, err := s.classifier.Classify(ctx, descriptions)
	if err != nil {
		return 0, fmt.Errorf("classify batch of %d: %w", len(descriptions), err)
	}
	if len(labels) != len(candidates) {
		return 0, fmt.Errorf("%w: got %d labels for %d rows", core.ErrClassification, len(labels), len(candidates))
	}

	txns := make([]core.Transaction, len(candidates))
	for i, c := range candidates {
		txns[i] = core.Transaction{
			Description: c.Description,
			Amount:      c.Amount,
			Category:    labels[i],
			Date:        c.Date,
		}
	}

	saved, err := s.store.InsertTransactions(ctx, txns)
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "Batch ingested", "rows", len(candidates), "saved", saved)
	return saved, nil
}
