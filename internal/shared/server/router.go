package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-backend/internal/recipes"
	"recipe-backend/internal/services/health"
	"recipe-backend/internal/shared/config"
	"recipe-backend/internal/shared/metrics"
	"recipe-backend/internal/shared/server/middleware"
	"recipe-backend/internal/shared/server/respond"
	"recipe-backend/internal/summaries"
)

// RouterDeps holds the handlers the router mounts.
type RouterDeps struct {
	Config         config.Config
	RecipeHandler  *recipes.Handler
	SummaryHandler *summaries.Handler
	Health         *health.Service
	RateLimiter    *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.OwnerKey(),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: rateLimitGroup,
			Limiter:  deps.RateLimiter,
			Rules: map[string]middleware.RateLimitRule{
				middleware.GenerateRateLimitGroup: middleware.PerMinute(deps.Config.GenerateRatePerMin, deps.Config.GenerateBurst),
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		report := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	if deps.RecipeHandler != nil {
		deps.RecipeHandler.RegisterRoutes(api)
	}
	if deps.SummaryHandler != nil {
		deps.SummaryHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch c.FullPath() {
	case "/api/v1/recipes", "/api/v1/ai":
		return middleware.GenerateRateLimitGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
