package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/voidlabs/ecosystem-indexer/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Trigger endpoints (authenticated)
		v1.POST("/sync/cron", middleware.CronAuth(authCfg), handler.TriggerCronSync)
		v1.POST("/sync/run", middleware.SyncAuth(authCfg), handler.TriggerManualSync)

		// Read endpoints (public read access)
		v1.GET("/opportunities", handler.ListOpportunities)
		v1.GET("/categories", handler.ListCategories)
		v1.GET("/projects/:slug", handler.GetProject)
		v1.GET("/sync/logs", handler.ListSyncLogs)
	}
}
