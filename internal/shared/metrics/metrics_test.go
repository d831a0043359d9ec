package metrics

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncGenerationStarted()
	IncRecipeSaved()
	ObserveGenerationDurationMs(420)

	out := Render()
	for _, want := range []string{
		"# TYPE recipe_generation_started_total counter",
		"# TYPE recipes_saved_total counter",
		"# TYPE recipe_generation_duration_ms histogram",
		`recipe_generation_duration_ms_bucket{le="500"}`,
		`recipe_generation_duration_ms_bucket{le="+Inf"}`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts %v", snap.counts)
	}
}

func TestWriteHistogramIsCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	var buf bytes.Buffer
	writeHistogram(&buf, "x", "help", h.Snapshot())
	out := buf.String()
	for _, want := range []string{`x_bucket{le="10"} 1`, `x_bucket{le="100"} 2`, `x_bucket{le="+Inf"} 3`, "x_count 3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestHandlerServesText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.HasPrefix(resp.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("unexpected content type %q", resp.Header().Get("Content-Type"))
	}
}
