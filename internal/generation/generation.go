// Package generation defines the contract for the external service that turns a
// free-text prompt into recipe text.
package generation

import (
	"context"
	"errors"
	"fmt"
)

// Client produces recipe text for a prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrUpstream marks failures of the generation service itself: unreachable,
	// non-success status or a malformed response.
	ErrUpstream = errors.New("generation upstream failure")

	// ErrNotConfigured is returned by PlaceholderClient.
	ErrNotConfigured = errors.New("generation client not configured")
)

// UpstreamError describes a failed call to the generation service.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("generation upstream: http status %d: %s: %v", e.StatusCode, e.Message, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("generation upstream: http status %d: %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("generation upstream: %s: %v", e.Message, e.Err)
	default:
		return "generation upstream: " + e.Message
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is matches ErrUpstream.
func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// Temporary reports whether repeating the call may succeed.
func (e *UpstreamError) Temporary() bool {
	if e.StatusCode >= 500 || e.StatusCode == 429 {
		return true
	}
	if e.StatusCode == 0 && e.Err != nil {
		return !errors.Is(e.Err, context.Canceled)
	}
	return false
}

// PlaceholderClient is used when no provider is configured.
type PlaceholderClient struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
