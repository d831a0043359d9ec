package generation

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"recipe-backend/internal/shared/telemetry"
)

const defaultRetryInitialInterval = 300 * time.Millisecond

type retryingClient struct {
	base       Client
	maxRetries uint64
	initial    time.Duration
}

// WithRetry wraps base so temporary upstream failures are retried up to
// maxRetries times with exponential backoff. maxRetries == 0 returns base.
func WithRetry(base Client, maxRetries int, initial time.Duration) Client {
	if base == nil || maxRetries <= 0 {
		return base
	}
	if initial <= 0 {
		initial = defaultRetryInitialInterval
	}
	return &retryingClient{base: base, maxRetries: uint64(maxRetries), initial: initial}
}

func (r *retryingClient) Generate(ctx context.Context, prompt string) (string, error) {
	var out string
	attempt := 0
	op := func() error {
		attempt++
		text, err := r.base.Generate(ctx, prompt)
		if err != nil {
			if !shouldRetry(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = text
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initial
	policy.MaxElapsedTime = 0
	b := backoff.WithContext(backoff.WithMaxRetries(policy, r.maxRetries), ctx)

	err := backoff.RetryNotify(op, b, func(err error, wait time.Duration) {
		telemetry.Info("generation.retry", map[string]any{
			"attempt": attempt,
			"wait_ms": wait.Milliseconds(),
			"error":   err.Error(),
		})
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

func shouldRetry(err error) bool {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Temporary()
	}
	return false
}
