package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Forkful API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Health check endpoint
	router.GET("/api/health", HealthCheck)

	// Create handlers
	recipeHandler := NewRecipeHandler(service.NewRecipeService(db))
	generateHandler := NewGenerateHandler(service.NewSpoonacularService(cfg))

	// Register routes
	apiGroup := router.Group("/api")
	recipeHandler.RegisterRoutes(apiGroup)
	generateHandler.RegisterRoutes(apiGroup)

	// Unmatched routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
