// Package openai generates recipes directly through the OpenAI chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"recipe-backend/internal/generation"
)

const systemPrompt = `You are a recipe assistant. Reply with a single recipe in markdown.
Start the first line with "Recipe: " followed by the dish name, then list ingredients and numbered steps.`

// Client implements generation.Client using openai-go.
type Client struct {
	model string
	sdk   openaisdk.Client
}

// NewClient constructs a client for model. baseURL may be empty.
func NewClient(apiKey, model, baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// Retries are owned by generation.WithRetry.
		option.WithMaxRetries(0),
	}
	if strings.TrimSpace(baseURL) != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	return &Client{model: model, sdk: openaisdk.NewClient(opts...)}, nil
}

// Generate asks the model for a recipe matching prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.sdk.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(systemPrompt),
			openaisdk.UserMessage(prompt),
		},
	})
	if err != nil {
		var apiErr *openaisdk.Error
		if errors.As(err, &apiErr) {
			return "", &generation.UpstreamError{StatusCode: apiErr.StatusCode, Message: "openai request failed", Err: err}
		}
		return "", &generation.UpstreamError{Message: "openai unreachable", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &generation.UpstreamError{Message: "openai: empty choices"}
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", &generation.UpstreamError{Message: "openai: empty content"}
	}
	return text, nil
}

var _ generation.Client = (*Client)(nil)
