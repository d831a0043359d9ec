package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"recipe-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"owner_key":   OwnerKeyFromContext(c),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if id := c.GetString("recipeId"); id != "" {
			fields["recipe_id"] = id
		}
		if origin := c.GetString("recipeOrigin"); origin != "" {
			fields["recipe_origin"] = origin
		}
		telemetry.Info("request.complete", fields)
	}
}
