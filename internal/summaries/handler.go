package summaries

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the summarize route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/summaries", h.summarize)
}

func (h *Handler) summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Summarize(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "URL is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to process blog post", nil)
		return
	}
	respond.OK(c, toSummarizeResponse(res))
}
