package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-backend/internal/generation"
)

func TestGenerateReturnsFirstChoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		assert.Equal(t, "gpt-4o-mini", body.Model)
		if assert.Len(t, body.Messages, 2) {
			assert.Equal(t, "system", body.Messages[0].Role)
			assert.Equal(t, "user", body.Messages[1].Role)
			assert.Equal(t, "tomato pasta", body.Messages[1].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "Recipe: Tomato Basil Pasta\n1. Boil water"}
			}]
		}`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", "gpt-4o-mini", srv.URL+"/", time.Second)
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "tomato pasta")
	require.NoError(t, err)
	assert.Equal(t, "Recipe: Tomato Basil Pasta\n1. Boil water", text)
}

func TestGenerateMapsStatusToUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", "gpt-4o-mini", srv.URL+"/", time.Second)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "tomato pasta")
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrUpstream)

	var upstream *generation.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
}

func TestNewClientValidatesInputs(t *testing.T) {
	_, err := NewClient("", "gpt-4o-mini", "", 0)
	assert.Error(t, err)
	_, err = NewClient("key", " ", "", 0)
	assert.Error(t, err)
}
