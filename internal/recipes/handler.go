package recipes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recipe-backend/internal/shared/server/middleware"
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

// RegisterRoutes attaches recipe routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recipes", h.generate)
	rg.POST("/ai", h.generate)
	rg.GET("/recipes", h.list)
	rg.GET("/recipes/:id", h.get)
	rg.DELETE("/recipes/:id", h.delete)
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	owner := firstNonBlank(req.OwnerKey, req.UserEmail, middleware.OwnerKeyFromContext(c))
	res, err := h.Svc.Generate(c.Request.Context(), GenerateInput{
		Prompt:   req.Prompt,
		OwnerKey: owner,
		Title:    req.Title,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Valid prompt is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate recipe", nil)
		}
		return
	}

	if res.Recipe.ID != "" {
		c.Set("recipeId", res.Recipe.ID)
	}
	c.Set("recipeOrigin", string(res.Recipe.Origin))
	respond.OK(c, toGenerateResponse(res))
}

func (h *Handler) list(c *gin.Context) {
	owner := firstNonBlank(c.Query("ownerKey"), c.Query("userEmail"), middleware.OwnerKeyFromContext(c))

	summaries, err := h.Svc.List(c.Request.Context(), owner)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "ownerKey is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch recipes", nil)
		}
		return
	}

	items := make([]SummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, toSummaryResponse(s))
	}
	respond.OK(c, ListResponse{Items: items, Count: len(items)})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("recipeId", id)

	recipe, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.itemError(c, err, "failed to fetch recipe")
		return
	}

	resp := toRecipeResponse(recipe)
	if strings.EqualFold(c.Query("format"), "html") {
		html, err := RenderHTML(recipe.Content)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render recipe", nil)
			return
		}
		resp.ContentHTML = html
	}
	respond.OK(c, gin.H{"recipe": resp})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set("recipeId", id)

	summary, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.itemError(c, err, "failed to delete recipe")
		return
	}
	respond.OK(c, gin.H{"deleted": toSummaryResponse(summary)})
}

func (h *Handler) itemError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid recipe ID", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Recipe not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallbackMsg, nil)
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
