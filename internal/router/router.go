package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/forkful/backend/config"
	"github.com/forkful/backend/internal/api"
	"github.com/forkful/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	api.RegisterRoutes(router, db, cfg)

	return router
}
