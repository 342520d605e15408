package safety

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/linksnip/linksnip/internal/logger"
)

// Gate asks an external URL-vetting service whether a destination is safe to
// shorten. It fails open: an unreachable or erroring service never blocks
// link creation.
type Gate struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

type checkRequest struct {
	URL string `json:"url"`
}

type checkResponse struct {
	Safe bool `json:"safe"`
}

func NewGate(endpoint, apiKey string, timeout time.Duration) *Gate {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &Gate{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// IsSafe reports whether the vetting service cleared the URL. A missing
// endpoint disables vetting entirely.
func (g *Gate) IsSafe(ctx context.Context, rawURL string) bool {
	if g.endpoint == "" {
		return true
	}

	log := logger.FromContext(ctx)

	body, err := json.Marshal(checkRequest{URL: rawURL})
	if err != nil {
		return true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Warn("safety gate request build failed, failing open", "error", err)
		return true
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Warn("safety gate unreachable, failing open", "error", err)
		return true
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("safety gate returned non-OK status, failing open", "status", resp.StatusCode)
		return true
	}

	var result checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Warn("safety gate response unreadable, failing open", "error", err)
		return true
	}

	return result.Safe
}
