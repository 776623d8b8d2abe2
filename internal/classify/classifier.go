// Package classify assigns spending categories to transaction
// descriptions by calling an external text classifier. The model is an
// opaque remote dependency; this package only knows the batch contract:
// n descriptions in, n category labels out, in the same order.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

// Classifier is the batch classification contract. Implementations
// return exactly one category label per input description, preserving
// order. A total failure is an error; per-item anomalies are handled by
// normalization, not escalated.
type Classifier interface {
	Classify(ctx context.Context, descriptions []string) ([]string, error)
}

// Func adapts a plain function to the Classifier interface.
type Func func(ctx context.Context, descriptions []string) ([]string, error)

func (f Func) Classify(ctx context.Context, descriptions []string) ([]string, error) {
	return f(ctx, descriptions)
}

// prediction is one structured classifier result. Some classifier
// builds emit {"description", "predicted_category"}, older ones
// {"description", "category"}, and the simplest just a label string.
type prediction struct {
	Description       string `json:"description"`
	PredictedCategory string `json:"predicted_category"`
	Category          string `json:"category"`
}

// NormalizeLabels turns a heterogeneous classifier response into one
// label per input description. Each element may be a JSON object
// (predicted_category preferred over category) or a bare string; an
// empty or unrecognizable element maps to the Uncategorized sentinel.
// A cardinality mismatch is a classification failure: truncating or
// padding would silently misalign labels with descriptions.
func NormalizeLabels(raw []json.RawMessage, want int) ([]string, error) {
	if len(raw) != want {
		return nil, fmt.Errorf("%w: classifier returned %d labels for %d descriptions", core.ErrClassification, len(raw), want)
	}

	labels := make([]string, len(raw))
	for i, msg := range raw {
		labels[i] = normalizeOne(msg)
	}
	return labels, nil
}

func normalizeOne(msg json.RawMessage) string {
	var p prediction
	if err := json.Unmarshal(msg, &p); err == nil {
		if label := firstNonBlank(p.PredictedCategory, p.Category); label != "" {
			return label
		}
		// A decodable object with no usable field falls through to the
		// string attempt; {"foo": 1} decodes into an empty prediction.
	}

	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		if label := strings.TrimSpace(s); label != "" {
			return label
		}
	}

	return core.Uncategorized
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
