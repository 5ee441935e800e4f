package http

import (
	"gorm.io/gorm"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/infrastructure/repository"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	tenantRepo       recruiting.TenantRepository
	userRepo         recruiting.UserRepository
	jobRepo          recruiting.JobRepository
	candidateRepo    recruiting.CandidateRepository
	subscriptionRepo billing.SubscriptionRepository
	usageRepo        billing.UsageRepository
	pendingRepo      billing.PendingSignupRepository
	paymentRepo      billing.PaymentHistoryRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		tenantRepo:       repository.NewTenantRepository(db),
		userRepo:         repository.NewUserRepository(db, log),
		jobRepo:          repository.NewJobRepository(db),
		candidateRepo:    repository.NewCandidateRepository(db),
		subscriptionRepo: repository.NewSubscriptionRepository(db, log),
		usageRepo:        repository.NewUsageRepository(db),
		pendingRepo:      repository.NewPendingSignupRepository(db, log),
		paymentRepo:      repository.NewPaymentHistoryRepository(db),
	}
}
