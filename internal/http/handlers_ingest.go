package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxUploadBytes = 10 << 20 // 10 MB

// handleUploadCSV ingests a CSV batch: multipart field "file", or the
// raw request body for text/csv uploads.
func (s *Server) handleUploadCSV(w http.ResponseWriter, r *http.Request) {
	body, err := csvBody(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	defer body.Close()

	saved, err := s.ingestion.IngestCSV(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%d transactions uploaded, classified and saved.", saved),
	})
}

func csvBody(r *http.Request) (io.ReadCloser, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, fmt.Errorf("parse upload form: %w", err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("no CSV file provided: %w", err)
		}
		return file, nil
	}
	return http.MaxBytesReader(nil, r.Body, maxUploadBytes), nil
}

// handleClearTransactions drops every stored transaction.
func (s *Server) handleClearTransactions(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.txnStore.DeleteAllTransactions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Deleted %d transactions successfully.", deleted),
	})
}

// handleCategorize exposes the classification gateway directly.
func (s *Server) handleCategorize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Descriptions []string `json:"descriptions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	labels, err := s.classifier.Classify(r.Context(), req.Descriptions)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]map[string]string, len(labels))
	for i, label := range labels {
		results[i] = map[string]string{
			"description":        req.Descriptions[i],
			"predicted_category": label,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": results})
}

// handleRoot is the health endpoint.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Smart budget service is running"})
}
