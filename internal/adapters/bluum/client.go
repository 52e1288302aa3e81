package bluum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/nestegg-finance/bluum-gateway/internal/domain"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Bluum performs a single attempt per call: no retry, no local caching.
// Failures propagate immediately and the vendor owns de-duplication via
// the Idempotency-Key header where supported.
const requestTimeout = 30 * time.Second

// Client is the shared HTTP client for the Bluum brokerage/wealth API,
// authenticated with HTTP Basic Auth (API key and secret).
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, apiSecret string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{},
	}
}

// do sends one JSON request to the vendor and returns the raw response
// body. Non-2xx responses become domain.UpstreamError carrying the
// vendor's status and body for verbatim relay to the client.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string) (json.RawMessage, error) {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Error marshalling JSON")
			return nil, fmt.Errorf("internal error")
		}
		payload = bytes.NewReader(encoded)
	}

	// tie the vendor timeout to the incoming ctx
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Error connecting to Bluum API")
		return nil, fmt.Errorf("bluum API connection error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Msg("bluum API error")
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: raw}
	}

	return raw, nil
}

func idempotencyHeader(key string) map[string]string {
	if key == "" {
		return nil
	}
	return map[string]string{"Idempotency-Key": key}
}
