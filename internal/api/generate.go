package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/backend/internal/service"
)

type GenerateHandler struct {
	lookupService *service.SpoonacularService
}

func NewGenerateHandler(lookupService *service.SpoonacularService) *GenerateHandler {
	return &GenerateHandler{
		lookupService: lookupService,
	}
}

func (h *GenerateHandler) RegisterRoutes(router *gin.RouterGroup) {
	ai := router.Group("/ai")
	{
		ai.GET("/generate", h.GenerateRecipe)
	}
}

// GenerateRecipe turns a comma-separated ingredient list into one
// GeneratedRecipe. The result is transient; the client persists it by
// resubmitting through the create endpoint.
func (h *GenerateHandler) GenerateRecipe(c *gin.Context) {
	ingredients := c.Query("ingredients")

	recipe, err := h.lookupService.GenerateFromIngredients(c.Request.Context(), ingredients)
	if err != nil {
		h.respondError(c, ingredients, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *GenerateHandler) respondError(c *gin.Context, ingredients string, err error) {
	switch {
	case errors.Is(err, service.ErrIngredientsRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide ingredients as a comma-separated string"})
	case errors.Is(err, service.ErrAPIKeyMissing):
		log.Printf("Error generating recipe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured"})
	case errors.Is(err, service.ErrNoRecipesFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No recipes found with those ingredients"})
	case errors.Is(err, service.ErrQuotaExceeded):
		log.Printf("Error generating recipe for %q: %v", ingredients, err)
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "API quota exceeded. Please try again later."})
	default:
		log.Printf("Error generating recipe for %q: %v", ingredients, err)
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(upstream.StatusCode, gin.H{"error": upstream.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error while generating recipe"})
	}
}
