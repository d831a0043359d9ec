package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-backend/internal/generation"
)

func TestGenerateReturnsRecipe(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		gotPrompt = body["prompt"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"recipe":"Recipe: Garlic Chicken Fried Rice\nStep 1"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "chicken and rice")
	require.NoError(t, err)
	assert.Equal(t, "chicken and rice", gotPrompt)
	assert.Equal(t, "Recipe: Garlic Chicken Fried Rice\nStep 1", text)
}

func TestGenerateNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "soup")
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrUpstream)

	var upstream *generation.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
	assert.True(t, upstream.Temporary())
}

func TestGenerateMissingRecipeField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"output":"something else"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "soup")
	assert.ErrorIs(t, err, generation.ErrUpstream)
}

func TestGenerateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "soup")
	assert.ErrorIs(t, err, generation.ErrUpstream)

	var upstream *generation.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.False(t, upstream.Temporary())
}

func TestGenerateMalformedBodyIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)

	_, err = generation.WithRetry(client, 3, time.Millisecond).Generate(context.Background(), "soup")
	assert.ErrorIs(t, err, generation.ErrUpstream)
	assert.Equal(t, 1, calls)
}

func TestGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := NewClient(url, time.Second)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "soup")
	assert.ErrorIs(t, err, generation.ErrUpstream)
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient(" ", time.Second)
	assert.Error(t, err)
}
