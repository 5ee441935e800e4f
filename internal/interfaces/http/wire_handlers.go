package http

import (
	"github.com/hireloop/hireloop/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler    *handlers.HealthHandler
	authHandler      *handlers.AuthHandler
	jobHandler       *handlers.JobHandler
	candidateHandler *handlers.CandidateHandler
	applyHandler     *handlers.ApplyHandler
	analyticsHandler *handlers.AnalyticsHandler
	billingHandler   *handlers.BillingHandler
	webhookHandler   *handlers.WebhookHandler
}
