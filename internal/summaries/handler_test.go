package summaries_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"recipe-backend/internal/bootstrap"
	"recipe-backend/internal/shared/config"
)

func buildRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(config.Config{
		Env:          "dev",
		StoreBackend: "memory",
		WebhookURL:   "http://localhost:5678/webhook/generate-recipe",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func TestSummarizeEndpoint(t *testing.T) {
	router := buildRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summaries", bytes.NewBufferString(`{"url":"https://example.com/post"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success      bool   `json:"success"`
		URL          string `json:"url"`
		Summary      string `json:"summary"`
		Translated   string `json:"translated"`
		PostSaved    bool   `json:"postSaved"`
		SummarySaved bool   `json:"summarySaved"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.URL != "https://example.com/post" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Summary == "" || resp.Translated == resp.Summary {
		t.Fatalf("expected summary and translation, got %+v", resp)
	}
	if !resp.PostSaved || !resp.SummarySaved {
		t.Fatalf("expected both saves in memory mode: %+v", resp)
	}
}

func TestSummarizeEndpointRequiresURL(t *testing.T) {
	router := buildRouter(t)

	for _, body := range []string{`{}`, `{"url":"  "}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/summaries", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, w.Code)
		}
		var resp struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Error.Code != "validation_error" {
			t.Fatalf("body %q: code = %q", body, resp.Error.Code)
		}
	}
}
