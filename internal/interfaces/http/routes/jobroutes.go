package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/permission"
	"github.com/hireloop/hireloop/internal/interfaces/http/handlers"
	"github.com/hireloop/hireloop/internal/interfaces/http/middleware"
)

// JobRouteConfig holds dependencies for recruiter job routes.
type JobRouteConfig struct {
	JobHandler           *handlers.JobHandler
	AnalyticsHandler     *handlers.AnalyticsHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	FeatureGate          *middleware.FeatureGateMiddleware
}

// SetupJobRoutes configures job description management for the signed-in tenant.
func SetupJobRoutes(engine *gin.Engine, cfg *JobRouteConfig) {
	perm := cfg.PermissionMiddleware

	jobs := engine.Group("/jobs")
	jobs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		jobs.POST("", perm.RequirePermission(permission.ResourceJob, permission.ActionCreate), cfg.JobHandler.CreateJob)
		jobs.GET("", perm.RequirePermission(permission.ResourceJob, permission.ActionRead), cfg.JobHandler.ListJobs)
		jobs.GET("/:code", perm.RequirePermission(permission.ResourceJob, permission.ActionRead), cfg.JobHandler.GetJob)
		jobs.PUT("/:code", perm.RequirePermission(permission.ResourceJob, permission.ActionUpdate), cfg.JobHandler.UpdateJob)
		jobs.DELETE("/:code", perm.RequirePermission(permission.ResourceJob, permission.ActionDelete), cfg.JobHandler.DeleteJob)

		jobs.GET("/:code/analytics/export",
			perm.RequirePermission(permission.ResourceAnalytics, permission.ActionExport),
			cfg.FeatureGate.RequireFeature(billing.FeatureFullAnalyticsEngine),
			cfg.AnalyticsHandler.ExportOwnJobDetail,
		)
	}
}
