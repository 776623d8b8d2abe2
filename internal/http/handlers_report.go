package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

func (s *Server) handleComputeSpend(w http.ResponseWriter, r *http.Request) {
	summary, err := s.reports.SpendSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"summary": summary})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := s.reports.Insights(r.Context())
	if errors.Is(err, core.ErrNoData) {
		writeJSON(w, http.StatusOK, noDataResponse())
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := s.reports.Analytics(r.Context())
	if errors.Is(err, core.ErrNoData) {
		writeJSON(w, http.StatusOK, noDataResponse())
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

// handleDownloadReport streams the insights report as CSV.
func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	txns, err := s.txnStore.ListTransactions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if len(txns) == 0 {
		writeJSON(w, http.StatusOK, noDataResponse())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=insights_report.csv`)
	if err := s.reports.ExportInsights(r.Context(), w); err != nil {
		// Headers are already out; log and abort the body.
		slog.ErrorContext(r.Context(), "Failed to stream report", "error", err)
	}
}

func noDataResponse() map[string]string {
	return map[string]string{"message": "No transaction data available."}
}
