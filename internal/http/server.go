// Package http exposes the budget service as a JSON API. Routing,
// marshaling, and status mapping live here; all domain behavior is in
// the services the handlers delegate to.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/anusua-sen/smart-budget-app/internal/classify"
	"github.com/anusua-sen/smart-budget-app/internal/middleware/trace"
	"github.com/anusua-sen/smart-budget-app/internal/services"
	"github.com/anusua-sen/smart-budget-app/internal/storage"
)

type Server struct {
	http.Server

	ingestion  *services.IngestionService
	reports    *services.ReportService
	txnStore   storage.TransactionStore
	budgets    storage.BudgetStore
	classifier classify.Classifier
}

func NewServer(addr string, ingestion *services.IngestionService, reports *services.ReportService,
	txnStore storage.TransactionStore, budgets storage.BudgetStore, classifier classify.Classifier) *Server {

	s := &Server{
		ingestion:  ingestion,
		reports:    reports,
		txnStore:   txnStore,
		budgets:    budgets,
		classifier: classifier,
	}

	s.Server = http.Server{
		Addr:           addr,
		Handler:        s.routes(),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}

	return s
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(trace.Middleware)

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/categorize", s.handleCategorize).Methods(http.MethodPost)

	b := r.PathPrefix("/budgets").Subrouter()
	b.HandleFunc("/upload-csv", s.handleUploadCSV).Methods(http.MethodPost)
	b.HandleFunc("/transactions/clear", s.handleClearTransactions).Methods(http.MethodDelete)
	b.HandleFunc("/bulk", s.handleCreateBudgetsBulk).Methods(http.MethodPost)
	b.HandleFunc("/view", s.handleViewBudgets).Methods(http.MethodGet)
	b.HandleFunc("/clear-limits", s.handleClearBudgets).Methods(http.MethodDelete)
	b.HandleFunc("/compute_spend", s.handleComputeSpend).Methods(http.MethodGet)
	b.HandleFunc("/insights", s.handleInsights).Methods(http.MethodGet)
	b.HandleFunc("/analytics", s.handleAnalytics).Methods(http.MethodGet)
	b.HandleFunc("/download-report", s.handleDownloadReport).Methods(http.MethodGet)
	b.HandleFunc("", s.handleCreateBudget).Methods(http.MethodPost)
	b.HandleFunc("/", s.handleCreateBudget).Methods(http.MethodPost)

	return r
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Server.Shutdown(ctx)
}
