package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop/internal/domain/permission"
	"github.com/hireloop/hireloop/internal/interfaces/http/handlers"
	"github.com/hireloop/hireloop/internal/interfaces/http/middleware"
)

// BillingRouteConfig holds dependencies for plan, signup and subscription routes.
type BillingRouteConfig struct {
	BillingHandler       *handlers.BillingHandler
	WebhookHandler       *handlers.WebhookHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
}

// SetupBillingRoutes configures billing routes.
func SetupBillingRoutes(engine *gin.Engine, cfg *BillingRouteConfig) {
	engine.GET("/plans", cfg.BillingHandler.GetPlans)

	billing := engine.Group("/billing")
	{
		// Public endpoints (no authentication required)
		billing.POST("/signup", cfg.RateLimiter.Limit(), cfg.BillingHandler.Signup)
		billing.GET("/account-status", cfg.BillingHandler.AccountStatus)
		billing.POST("/webhook", cfg.WebhookHandler.HandleWebhook)

		// Any recruiter of the tenant
		billingRead := billing.Group("")
		billingRead.Use(cfg.AuthMiddleware.RequireAuth())
		billingRead.Use(cfg.PermissionMiddleware.RequirePermission(permission.ResourceBilling, permission.ActionRead))
		{
			billingRead.GET("/usage", cfg.BillingHandler.GetUsage)
			billingRead.GET("/limits/:resource", cfg.BillingHandler.CheckLimit)
			billingRead.GET("/features/:feature", cfg.BillingHandler.CheckFeature)
			billingRead.GET("/payments", cfg.BillingHandler.ListPayments)
		}

		// Owner only
		billingManage := billing.Group("")
		billingManage.Use(cfg.AuthMiddleware.RequireAuth())
		billingManage.Use(cfg.PermissionMiddleware.RequirePermission(permission.ResourceBilling, permission.ActionManage))
		{
			billingManage.POST("/change-plan", cfg.BillingHandler.ChangePlan)
			billingManage.POST("/add-seats", cfg.BillingHandler.AddSeats)
			billingManage.POST("/cancel", cfg.BillingHandler.Cancel)
			billingManage.POST("/payment-method", cfg.BillingHandler.UpdatePaymentMethod)
		}
	}
}
