// Package summarizer wraps the outbound call to the external text-generation
// server. Summary text is advisory: a request must never fail because the
// model server is down, so Generate absorbs every failure into a fixed
// fallback string instead of returning an error.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// FallbackSummary is returned whenever the outbound call fails for any
// reason: network error, non-success status, or a malformed body.
const FallbackSummary = "Failed to generate summary"

// Client calls an Ollama-compatible generate endpoint.
type Client struct {
	baseURL string
	model   string
	httpc   *http.Client
	logger  zerolog.Logger
}

// NewClient creates a Client for the generate endpoint at baseURL. The
// timeout should be generous; completion latency is unbounded and variable.
func NewClient(baseURL, model string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "summarizer").Logger(),
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends the prompt to the model server and returns the generated
// text, cleaned of formatting artifacts. Exactly one attempt is made; no
// retries. On any failure the fixed FallbackSummary string is returned.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to encode generate request")
		return FallbackSummary
	}

	url := c.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("failed to build generate request")
		return FallbackSummary
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", url).Msg("generate call failed")
		return FallbackSummary
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("generate call returned non-success status")
		return FallbackSummary
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to read generate response")
		return FallbackSummary
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		c.logger.Warn().Err(fmt.Errorf("malformed response body: %w", err)).Msg("failed to decode generate response")
		return FallbackSummary
	}
	if out.Response == "" {
		c.logger.Warn().Msg("generate response missing response field")
		return FallbackSummary
	}

	return Clean(out.Response)
}
