package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/interfaces/http/handlers"
)

// AnalyticsRouteConfig holds dependencies for the dashboard analytics routes.
type AnalyticsRouteConfig struct {
	AnalyticsHandler *handlers.AnalyticsHandler
}

// SetupAnalyticsRoutes configures the public, tenant-slug addressed analytics API.
func SetupAnalyticsRoutes(engine *gin.Engine, cfg *AnalyticsRouteConfig) {
	analytics := engine.Group("/analytics")
	{
		analytics.GET("/summary", cfg.AnalyticsHandler.GetSummary)
		analytics.GET("/job/:code", cfg.AnalyticsHandler.GetJobDetail)
		analytics.GET("/job/:code/export", cfg.AnalyticsHandler.ExportJobDetail)
	}
}
