package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JTFulkerson/cisc482-cooking-app/internal/api"
	"github.com/JTFulkerson/cisc482-cooking-app/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	recipeHandler *api.RecipeHandler,
	generateHandler *api.GenerateHandler,
	scannerHandler *api.ScannerHandler,
	pantryHandler *api.PantryHandler,
	feedHandler *api.FeedHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1)
	profileHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	generateHandler.RegisterRoutes(v1)
	scannerHandler.RegisterRoutes(v1)
	pantryHandler.RegisterRoutes(v1)
	feedHandler.RegisterRoutes(v1)

	return router
}
