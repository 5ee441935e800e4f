package http

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	analyticsUsecases "github.com/hireloop/hireloop/internal/application/analytics/usecases"
	authUsecases "github.com/hireloop/hireloop/internal/application/auth/usecases"
	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/application/billing/quota"
	billingUsecases "github.com/hireloop/hireloop/internal/application/billing/usecases"
	"github.com/hireloop/hireloop/internal/application/recruiting/usecases"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/infrastructure/auth"
	"github.com/hireloop/hireloop/internal/infrastructure/config"
	"github.com/hireloop/hireloop/internal/infrastructure/email"
	"github.com/hireloop/hireloop/internal/infrastructure/export"
	"github.com/hireloop/hireloop/internal/infrastructure/llm"
	"github.com/hireloop/hireloop/internal/infrastructure/metrics"
	"github.com/hireloop/hireloop/internal/infrastructure/payment"
	infraPermission "github.com/hireloop/hireloop/internal/infrastructure/permission"
	"github.com/hireloop/hireloop/internal/infrastructure/ratelimit"
	"github.com/hireloop/hireloop/internal/infrastructure/storage"
	"github.com/hireloop/hireloop/internal/infrastructure/textextract"
	"github.com/hireloop/hireloop/internal/interfaces/http/handlers"
	"github.com/hireloop/hireloop/internal/interfaces/http/middleware"
	"github.com/hireloop/hireloop/internal/shared/db"
	"github.com/hireloop/hireloop/internal/shared/logger"
	"github.com/hireloop/hireloop/internal/shared/services/markdown"
)

// initInfrastructure sets up Redis, repositories, auth services, casbin and metrics.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.db, log)
	c.metrics = metrics.New(cfg.Metrics.Namespace)

	// Initialize auth services
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)

	enforcer, err := infraPermission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := infraPermission.InitRecruitingPermissions(enforcer, log); err != nil {
		return fmt.Errorf("failed to seed recruiting permissions: %w", err)
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log)

	// Rate limiting is the only Redis consumer; without it no connection is opened.
	var limiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
		limiter = ratelimit.NewRedisRateLimiter(client)
	}
	c.rateLimiter = middleware.NewRateLimiter(limiter, ratelimit.Limits{
		PerMinute: cfg.RateLimit.RequestsPerMinute,
		PerHour:   cfg.RateLimit.RequestsPerHour,
	}, c.metrics, log)

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// initBilling builds the plan catalog, quota service, payment gateway and billing use cases.
func (c *Container) initBilling() error {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	c.catalog = billing.DefaultCatalog()
	c.quota = quota.NewService(repos.subscriptionRepo, repos.usageRepo, repos.jobRepo, repos.userRepo, billing.NewGate(c.catalog), log)

	gateway, err := newPaymentGateway(cfg, log)
	if err != nil {
		return err
	}
	c.gateway = gateway

	var smtp *email.SMTPEmailService
	if cfg.Email.Enabled() {
		smtp = email.NewSMTPEmailService(email.SMTPConfigFrom(cfg.Email, cfg.Server.BaseURL))
	} else {
		log.Warnw("SMTP not configured, billing emails will be skipped")
	}
	c.notifier = email.NewBillingNotifier(smtp, log)

	txManager := db.NewTransactionManager(c.db)
	verifier := payment.NewWebhookVerifier(cfg.Billing.WebhookSecrets)
	if !verifier.Configured() {
		log.Warnw("no webhook secrets configured, /billing/webhook will answer 503")
	}

	ucs := c.usecases()
	ucs.signupUC = billingUsecases.NewSignupUseCase(repos.userRepo, repos.pendingRepo, c.hasher, cfg.Billing.PaymentLinks, log)
	ucs.accountStatusUC = billingUsecases.NewAccountStatusUseCase(repos.userRepo, repos.tenantRepo, log)
	ucs.usageSummaryUC = billingUsecases.NewGetUsageSummaryUseCase(c.quota, log)
	ucs.checkCapabilityUC = billingUsecases.NewCheckCapabilityUseCase(c.quota, log)
	ucs.changePlanUC = billingUsecases.NewChangePlanUseCase(repos.subscriptionRepo, repos.paymentRepo, gateway, c.catalog, txManager, log)
	ucs.addSeatsUC = billingUsecases.NewAddSeatsUseCase(repos.subscriptionRepo, repos.paymentRepo, gateway, c.catalog, txManager, log)
	ucs.cancelSubscriptionUC = billingUsecases.NewCancelSubscriptionUseCase(repos.subscriptionRepo, gateway, log)
	ucs.updatePaymentMethodUC = billingUsecases.NewUpdatePaymentMethodUseCase(repos.subscriptionRepo, gateway, log)
	ucs.listPaymentsUC = billingUsecases.NewListPaymentsUseCase(repos.paymentRepo, log)
	ucs.getPlansUC = billingUsecases.NewGetPlansUseCase(c.catalog)
	ucs.handleWebhookUC = billingUsecases.NewHandleWebhookUseCase(
		verifier,
		repos.subscriptionRepo,
		repos.paymentRepo,
		repos.pendingRepo,
		repos.tenantRepo,
		repos.userRepo,
		txManager,
		c.notifier,
		log,
	).WithObserver(c.metrics)

	ucs.loginUC = authUsecases.NewLoginUseCase(repos.userRepo, repos.tenantRepo, c.hasher, &tokenIssuerAdapter{c.jwtSvc}, log)

	return nil
}

// newPaymentGateway selects the gateway named by billing.gateway.
func newPaymentGateway(cfg *config.Config, log logger.Interface) (paymentgateway.PaymentGateway, error) {
	switch cfg.Billing.Gateway {
	case "stripe":
		gateway, err := payment.NewStripeGateway(cfg.Billing, log.Named("payment.stripe"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize stripe gateway: %w", err)
		}
		return gateway, nil
	case "", "mock":
		log.Infow("using in-memory mock payment gateway")
		return paymentgateway.NewMockGateway(paymentgateway.NewMemoryStore()), nil
	default:
		return nil, fmt.Errorf("unknown billing gateway %q", cfg.Billing.Gateway)
	}
}

// initRecruiting builds résumé storage, the LLM generator, and the job, candidate and analytics use cases.
func (c *Container) initRecruiting() error {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	resumes, err := storage.NewLocalStore(cfg.Storage.ResumeDir)
	if err != nil {
		return fmt.Errorf("failed to initialize resume storage: %w", err)
	}
	c.resumes = resumes

	generator, err := llm.NewGenerator(context.Background(), cfg.LLM, log)
	if err != nil {
		log.Warnw("LLM generator unavailable, screening requests will fail", "error", err)
		c.generator = unavailableGenerator{reason: err.Error()}
	} else {
		c.generator = generator.WithObserver(c.metrics.ObserveLLMCall)
	}

	renderer := markdown.NewRenderer()

	ucs := c.usecases()
	ucs.createJobUC = usecases.NewCreateJobUseCase(repos.tenantRepo, repos.jobRepo, c.quota, renderer, log)
	ucs.updateJobUC = usecases.NewUpdateJobUseCase(repos.jobRepo, c.quota, renderer, log)
	ucs.getJobUC = usecases.NewGetJobUseCase(repos.jobRepo, log)
	ucs.listJobsUC = usecases.NewListJobsUseCase(repos.jobRepo, log)
	ucs.deleteJobUC = usecases.NewDeleteJobUseCase(repos.jobRepo, log)
	ucs.getJobPostingUC = usecases.NewGetJobPostingUseCase(repos.jobRepo)

	ucs.applyForJobUC = usecases.NewApplyForJobUseCase(
		repos.jobRepo,
		repos.candidateRepo,
		resumes,
		textextract.NewExtractor(),
		textextract.Supported,
		c.quota,
		c.generator,
		log,
	).WithObserver(c.metrics)
	ucs.submitAnswersUC = usecases.NewSubmitAnswersUseCase(repos.candidateRepo, c.generator, log)
	ucs.listCandidatesUC = usecases.NewListCandidatesUseCase(repos.candidateRepo, log)
	ucs.candidatesUC = usecases.NewCandidatesUseCase(repos.candidateRepo, resumes, log)

	ucs.getJobSummariesUC = analyticsUsecases.NewGetJobSummariesUseCase(repos.tenantRepo, repos.jobRepo, repos.candidateRepo, log)
	ucs.getJobDetailUC = analyticsUsecases.NewGetJobDetailUseCase(repos.tenantRepo, repos.jobRepo, repos.candidateRepo, log)
	ucs.exportJobDetailUC = analyticsUsecases.NewExportJobDetailUseCase(ucs.getJobDetailUC, c.quota, export.NewExporter(), log)

	return nil
}

// initHandlers creates the HTTP handlers and the middlewares that depend on use cases.
func (c *Container) initHandlers() {
	log := c.log
	ucs := c.usecases()

	c.featureGate = middleware.NewFeatureGateMiddleware(c.quota, log)

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(gormPinger{c.db}),
		authHandler:   handlers.NewAuthHandler(ucs.loginUC, log),
		jobHandler: handlers.NewJobHandler(
			ucs.createJobUC,
			ucs.updateJobUC,
			ucs.getJobUC,
			ucs.listJobsUC,
			ucs.deleteJobUC,
			log,
		),
		candidateHandler: handlers.NewCandidateHandler(ucs.listCandidatesUC, ucs.candidatesUC, log),
		applyHandler: handlers.NewApplyHandler(
			ucs.getJobPostingUC,
			ucs.applyForJobUC,
			ucs.submitAnswersUC,
			c.cfg.Server.MaxUploadMB,
			log,
		),
		analyticsHandler: handlers.NewAnalyticsHandler(ucs.getJobSummariesUC, ucs.getJobDetailUC, ucs.exportJobDetailUC, log),
		billingHandler: handlers.NewBillingHandler(handlers.BillingUseCases{
			Signup:              ucs.signupUC,
			AccountStatus:       ucs.accountStatusUC,
			UsageSummary:        ucs.usageSummaryUC,
			Capability:          ucs.checkCapabilityUC,
			ChangePlan:          ucs.changePlanUC,
			AddSeats:            ucs.addSeatsUC,
			Cancel:              ucs.cancelSubscriptionUC,
			UpdatePaymentMethod: ucs.updatePaymentMethodUC,
			ListPayments:        ucs.listPaymentsUC,
			GetPlans:            ucs.getPlansUC,
		}, log),
		webhookHandler: handlers.NewWebhookHandler(ucs.handleWebhookUC, log),
	}
}

func (c *Container) usecases() *allUseCases {
	if c.ucs == nil {
		c.ucs = &allUseCases{}
	}
	return c.ucs
}
