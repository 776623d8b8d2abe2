package services

import (
	"context"
	"io"

	"github.com/anusua-sen/smart-budget-app/internal/core"
	"github.com/anusua-sen/smart-budget-app/internal/report"
	"github.com/anusua-sen/smart-budget-app/internal/storage"
)

// ReportService computes derived reports from fresh snapshots of the
// two stores. Nothing is cached: every call reflects the stores at
// query time.
type ReportService struct {
	txns    storage.TransactionStore
	budgets storage.BudgetStore
}

func NewReportService(txns storage.TransactionStore, budgets storage.BudgetStore) *ReportService {
	return &ReportService{txns: txns, budgets: budgets}
}

// SpendSummary compares accumulated spend per reconciled category to
// the budget limits.
func (s *ReportService) SpendSummary(ctx context.Context) ([]core.SpendSummaryEntry, error) {
	txns, err := s.txns.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgets.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	return report.SpendSummary(txns, budgets), nil
}

func (s *ReportService) Insights(ctx context.Context) (core.InsightsReport, error) {
	txns, err := s.txns.ListTransactions(ctx)
	if err != nil {
		return core.InsightsReport{}, err
	}
	return report.Insights(txns)
}

func (s *ReportService) Analytics(ctx context.Context) (core.AnalyticsReport, error) {
	txns, err := s.txns.ListTransactions(ctx)
	if err != nil {
		return core.AnalyticsReport{}, err
	}
	return report.Analytics(txns)
}

// ExportInsights writes the delimited insights report to w.
func (s *ReportService) ExportInsights(ctx context.Context, w io.Writer) error {
	txns, err := s.txns.ListTransactions(ctx)
	if err != nil {
		return err
	}
	return report.WriteInsightsCSV(w, txns)
}
