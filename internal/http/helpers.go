package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the failure taxonomy to HTTP statuses. The error
// message is passed through: row-level failures already name the
// offending input.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrSchema), errors.Is(err, core.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrClassification):
		status = http.StatusBadGateway
	case errors.Is(err, core.ErrStorage):
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}
