package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/application/billing/quota"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/screening"
	"github.com/hireloop/hireloop/internal/infrastructure/auth"
	"github.com/hireloop/hireloop/internal/infrastructure/config"
	"github.com/hireloop/hireloop/internal/infrastructure/email"
	"github.com/hireloop/hireloop/internal/infrastructure/metrics"
	infraPermission "github.com/hireloop/hireloop/internal/infrastructure/permission"
	"github.com/hireloop/hireloop/internal/infrastructure/storage"
	"github.com/hireloop/hireloop/internal/interfaces/http/middleware"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and handlers,
// and wires them together. Shutdown releases what it opened.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	featureGate          *middleware.FeatureGateMiddleware
	rateLimiter          *middleware.RateLimiter

	// Shared services
	jwtSvc    *auth.JWTService
	hasher    *auth.BcryptPasswordHasher
	enforcer  *infraPermission.Enforcer
	metrics   *metrics.Metrics
	catalog   *billing.Catalog
	quota     *quota.Service
	gateway   paymentgateway.PaymentGateway
	notifier  *email.BillingNotifier
	generator screening.TextGenerator
	resumes   *storage.LocalStore
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth, Casbin, Metrics
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Billing - Catalog, Quota, Gateway, Notifier
	if err := c.initBilling(); err != nil {
		return nil, err
	}

	// Section 3: Recruiting - Storage, LLM, Jobs, Candidates, Analytics
	if err := c.initRecruiting(); err != nil {
		return nil, err
	}

	// Section 4: Handlers and request-scoped middlewares
	c.initHandlers()

	return c, nil
}
