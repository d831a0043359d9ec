package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	generationStartedTotal   atomic.Uint64
	generationSucceededTotal atomic.Uint64
	generationFallbackTotal  atomic.Uint64
	generationErrorTotal     atomic.Uint64
	recipesSavedTotal        atomic.Uint64
	recipesSaveFailedTotal   atomic.Uint64

	generationDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000, 120000})
)

// IncGenerationStarted counts a call to the generation service.
func IncGenerationStarted() {
	generationStartedTotal.Add(1)
}

// IncGenerationSucceeded counts generated content.
func IncGenerationSucceeded() {
	generationSucceededTotal.Add(1)
}

// IncGenerationFallback counts upstream failures served with fallback content.
func IncGenerationFallback() {
	generationFallbackTotal.Add(1)
}

// IncGenerationError counts unexpected generation failures.
func IncGenerationError() {
	generationErrorTotal.Add(1)
}

// IncRecipeSaved counts persisted recipes.
func IncRecipeSaved() {
	recipesSavedTotal.Add(1)
}

// IncRecipeSaveFailed counts recipes that could not be persisted.
func IncRecipeSaveFailed() {
	recipesSaveFailedTotal.Add(1)
}

// ObserveGenerationDurationMs records a generation call duration in milliseconds.
func ObserveGenerationDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	generationDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "recipe_generation_started_total", "Generation service calls started", generationStartedTotal.Load())
	writeCounter(&buf, "recipe_generation_succeeded_total", "Generation service calls that returned content", generationSucceededTotal.Load())
	writeCounter(&buf, "recipe_generation_fallback_total", "Upstream failures served with fallback content", generationFallbackTotal.Load())
	writeCounter(&buf, "recipe_generation_error_total", "Unexpected generation failures", generationErrorTotal.Load())
	writeCounter(&buf, "recipes_saved_total", "Recipes persisted", recipesSavedTotal.Load())
	writeCounter(&buf, "recipes_save_failed_total", "Recipes that failed to persist", recipesSaveFailedTotal.Load())
	writeHistogram(&buf, "recipe_generation_duration_ms", "Generation call duration in milliseconds", generationDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts holds per-bucket hits; writeHistogram accumulates them.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
