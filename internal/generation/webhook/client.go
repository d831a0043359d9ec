// Package webhook calls a workflow-automation webhook that turns a prompt into recipe text.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"recipe-backend/internal/generation"
)

const maxResponseBytes = 1 << 20

// Client implements generation.Client against a webhook endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient constructs a webhook client with the given request timeout.
func NewClient(url string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("GENERATION_WEBHOOK_URL is required")
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Recipe *string `json:"recipe"`
}

// Generate posts the prompt and returns the "recipe" field of the response.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("encode webhook request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &generation.UpstreamError{Message: "webhook unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &generation.UpstreamError{StatusCode: resp.StatusCode, Message: "read webhook response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &generation.UpstreamError{StatusCode: resp.StatusCode, Message: snippet(body)}
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		// No Err: a bad body is not a transport failure and is not retried.
		return "", &generation.UpstreamError{Message: "malformed webhook response: " + err.Error()}
	}
	if decoded.Recipe == nil || strings.TrimSpace(*decoded.Recipe) == "" {
		return "", &generation.UpstreamError{Message: "webhook response missing recipe"}
	}
	return *decoded.Recipe, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "empty body"
	}
	if len(s) > 200 {
		return s[:200]
	}
	return s
}

var _ generation.Client = (*Client)(nil)
