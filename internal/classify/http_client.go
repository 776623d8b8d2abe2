package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

// HTTPClassifier calls a remote classification service over JSON.
// The wire contract is POST {base}/categorize with
// {"descriptions": [...]} and a {"categories": [...]} response whose
// elements may be structured records or plain label strings.
type HTTPClassifier struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClassifier(baseURL string, timeout time.Duration) *HTTPClassifier {
	return &HTTPClassifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type classifyRequest struct {
	Descriptions []string `json:"descriptions"`
}

type classifyResponse struct {
	Categories []json.RawMessage `json:"categories"`
}

// Classify sends the whole batch in a single call. An empty batch
// short-circuits without touching the network.
func (c *HTTPClassifier) Classify(ctx context.Context, descriptions []string) ([]string, error) {
	if len(descriptions) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(classifyRequest{Descriptions: descriptions})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", core.ErrClassification, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/categorize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", core.ErrClassification, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: call classifier: %v", core.ErrClassification, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: classifier returned status %d: %s", core.ErrClassification, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var decoded classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", core.ErrClassification, err)
	}

	return NormalizeLabels(decoded.Categories, len(descriptions))
}
