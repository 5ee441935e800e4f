package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/domain/permission"
	"github.com/hireloop/hireloop/internal/interfaces/http/handlers"
	"github.com/hireloop/hireloop/internal/interfaces/http/middleware"
)

// CandidateRouteConfig holds dependencies for recruiter candidate routes.
type CandidateRouteConfig struct {
	CandidateHandler     *handlers.CandidateHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCandidateRoutes configures candidate review routes.
func SetupCandidateRoutes(engine *gin.Engine, cfg *CandidateRouteConfig) {
	canRead := cfg.PermissionMiddleware.RequirePermission(permission.ResourceCandidate, permission.ActionRead)
	canDelete := cfg.PermissionMiddleware.RequirePermission(permission.ResourceCandidate, permission.ActionDelete)

	candidates := engine.Group("/candidates")
	candidates.Use(cfg.AuthMiddleware.RequireAuth())
	{
		candidates.GET("", canRead, cfg.CandidateHandler.ListCandidates)
		candidates.GET("/:id", canRead, cfg.CandidateHandler.GetCandidate)
		candidates.GET("/:id/resume", canRead, cfg.CandidateHandler.DownloadResume)
		candidates.DELETE("/:id", canDelete, cfg.CandidateHandler.DeleteCandidate)
	}
}
