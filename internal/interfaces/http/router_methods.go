package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hireloop/hireloop/internal/interfaces/http/middleware"
	"github.com/hireloop/hireloop/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.Metrics(r.metrics))

	r.engine.GET("/health", r.hdlrs.healthHandler.Health)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if r.cfg.Metrics.Enabled {
		r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.hdlrs.authHandler,
		RateLimiter: r.rateLimiter,
	})

	routes.SetupApplyRoutes(r.engine, &routes.ApplyRouteConfig{
		ApplyHandler: r.hdlrs.applyHandler,
		RateLimiter:  r.rateLimiter,
	})

	routes.SetupAnalyticsRoutes(r.engine, &routes.AnalyticsRouteConfig{
		AnalyticsHandler: r.hdlrs.analyticsHandler,
	})

	routes.SetupJobRoutes(r.engine, &routes.JobRouteConfig{
		JobHandler:           r.hdlrs.jobHandler,
		AnalyticsHandler:     r.hdlrs.analyticsHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		FeatureGate:          r.featureGate,
	})

	routes.SetupCandidateRoutes(r.engine, &routes.CandidateRouteConfig{
		CandidateHandler:     r.hdlrs.candidateHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupBillingRoutes(r.engine, &routes.BillingRouteConfig{
		BillingHandler:       r.hdlrs.billingHandler,
		WebhookHandler:       r.hdlrs.webhookHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimiter:          r.rateLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown releases connections opened by the container. The database is owned by the caller.
func (r *Router) Shutdown() {
	if r.redis != nil {
		if err := r.redis.Close(); err != nil {
			r.log.Errorw("failed to close Redis connection", "error", err)
		}
	}
}
