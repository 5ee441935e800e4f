package usecases

import (
	"context"

	"github.com/hireloop/hireloop/internal/domain/billing"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// BillingNotifier sends the owner-facing billing mail.
type BillingNotifier interface {
	SendWelcome(to, fullName, companyName, tenantSlug string) error
	SendPaymentFailed(to, amount, invoice string) error
}

// QuotaService is the subset of quota.Service the billing use cases read through.
type QuotaService interface {
	Gate() *billing.Gate
	Subscription(ctx context.Context, tenantID uint) (*billing.TenantSubscription, error)
	Current(ctx context.Context, sub *billing.TenantSubscription, resource billing.Resource) (int, error)
	CheckLimit(ctx context.Context, tenantID uint, resource billing.Resource) (billing.LimitCheck, error)
	CheckFeature(ctx context.Context, tenantID uint, feature billing.Feature) (billing.FeatureCheck, error)
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type WebhookObserver interface {
	RecordWebhook(eventType, status string)
}
