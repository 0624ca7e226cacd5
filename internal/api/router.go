package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jothamO/prism-app-sub003/internal/api/handler"
	"github.com/jothamO/prism-app-sub003/internal/api/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	levyHandler *handler.LevyHandler,
	avoidanceHandler *handler.AvoidanceHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.POST("/:id/levy-scan", levyHandler.Scan)
			accounts.GET("/:id/levy-charges", levyHandler.GetCharges)
			accounts.POST("/:id/avoidance-checks", avoidanceHandler.Check)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
