package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

type budgetRequest struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

// handleCreateBudget upserts a single budget: create if absent,
// overwrite the limit if present.
func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	budget, err := s.budgets.UpsertBudget(r.Context(), req.Category, req.Limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

// handleCreateBudgetsBulk upserts a list of budgets in order. Later
// entries for the same category win, matching single-upsert semantics.
func (s *Server) handleCreateBudgetsBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	results := make([]core.Budget, 0, len(reqs))
	for _, req := range reqs {
		budget, err := s.budgets.UpsertBudget(r.Context(), req.Category, req.Limit)
		if err != nil {
			writeError(w, err)
			return
		}
		results = append(results, budget)
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleViewBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.budgets.ListBudgets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	view := make([]map[string]any, len(budgets))
	for i, b := range budgets {
		view[i] = map[string]any{
			"category":     b.Category,
			"budget_limit": b.Limit,
		}
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleClearBudgets(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.budgets.DeleteAllBudgets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Cleared %d budget limits successfully.", deleted),
	})
}
