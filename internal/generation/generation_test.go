package generation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedClient struct {
	errs  []error
	text  string
	calls int
}

func (s *scriptedClient) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.calls <= len(s.errs) {
		return "", s.errs[s.calls-1]
	}
	return s.text, nil
}

func TestUpstreamErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("call webhook: %w", &UpstreamError{StatusCode: 500, Message: "boom"})
	assert.ErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, ErrNotConfigured, ErrUpstream)
}

func TestUpstreamErrorTemporary(t *testing.T) {
	assert.True(t, (&UpstreamError{StatusCode: 503}).Temporary())
	assert.True(t, (&UpstreamError{StatusCode: 429}).Temporary())
	assert.False(t, (&UpstreamError{StatusCode: 400}).Temporary())
	assert.False(t, (&UpstreamError{Message: "missing recipe"}).Temporary())
	assert.True(t, (&UpstreamError{Err: errors.New("connection refused")}).Temporary())
	assert.False(t, (&UpstreamError{Err: context.Canceled}).Temporary())
}

func TestWithRetryRetriesTemporaryFailures(t *testing.T) {
	base := &scriptedClient{
		errs: []error{&UpstreamError{StatusCode: 502, Message: "bad gateway"}},
		text: "Recipe: Soup",
	}
	client := WithRetry(base, 2, time.Millisecond)

	text, err := client.Generate(context.Background(), "soup")
	require.NoError(t, err)
	assert.Equal(t, "Recipe: Soup", text)
	assert.Equal(t, 2, base.calls)
}

func TestWithRetryStopsOnPermanentFailure(t *testing.T) {
	permanent := &UpstreamError{StatusCode: 400, Message: "bad request"}
	base := &scriptedClient{errs: []error{permanent}, text: "unused"}
	client := WithRetry(base, 3, time.Millisecond)

	_, err := client.Generate(context.Background(), "soup")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 1, base.calls)
}

func TestWithRetryGivesUpAfterMaxRetries(t *testing.T) {
	failure := &UpstreamError{StatusCode: 500, Message: "down"}
	base := &scriptedClient{errs: []error{failure, failure, failure, failure}}
	client := WithRetry(base, 2, time.Millisecond)

	_, err := client.Generate(context.Background(), "soup")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 3, base.calls)
}

func TestWithRetryZeroReturnsBase(t *testing.T) {
	base := &scriptedClient{}
	assert.Same(t, Client(base), WithRetry(base, 0, time.Millisecond))
}

func TestPlaceholderClient(t *testing.T) {
	_, err := PlaceholderClient{}.Generate(context.Background(), "soup")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
