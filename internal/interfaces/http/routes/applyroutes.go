package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/interfaces/http/handlers"
	"github.com/hireloop/hireloop/internal/interfaces/http/middleware"
)

// ApplyRouteConfig holds dependencies for the candidate-facing routes.
type ApplyRouteConfig struct {
	ApplyHandler *handlers.ApplyHandler
	RateLimiter  *middleware.RateLimiter
}

// SetupApplyRoutes configures the public application flow: posting, upload, answers.
func SetupApplyRoutes(engine *gin.Engine, cfg *ApplyRouteConfig) {
	apply := engine.Group("/apply")
	{
		apply.GET("/:slug", cfg.ApplyHandler.GetPosting)
		apply.POST("/:slug", cfg.RateLimiter.Limit(), cfg.ApplyHandler.Apply)
	}

	engine.POST("/answers/:candidateID", cfg.RateLimiter.Limit(), cfg.ApplyHandler.SubmitAnswers)
}
