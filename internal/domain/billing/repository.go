package billing

import (
	"context"
	"time"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *TenantSubscription) error
	Update(ctx context.Context, sub *TenantSubscription) error
	// GetByTenantID returns ErrSubscriptionNotFound when the tenant has no stored row.
	GetByTenantID(ctx context.Context, tenantID uint) (*TenantSubscription, error)
	GetByGatewaySubscriptionID(ctx context.Context, id string) (*TenantSubscription, error)
	GetByGatewayCustomerID(ctx context.Context, id string) (*TenantSubscription, error)
}

type UsageRepository interface {
	// GetCurrent returns the usage row covering at, or nil when none exists.
	GetCurrent(ctx context.Context, tenantID uint, at time.Time) (*TenantUsage, error)
	Create(ctx context.Context, usage *TenantUsage) error
	IncrementResumes(ctx context.Context, id uint) error
}

type PendingSignupRepository interface {
	// Upsert inserts the signup or overwrites the row with the same email.
	Upsert(ctx context.Context, signup *PendingSignup) error
	GetByEmail(ctx context.Context, email string) (*PendingSignup, error)
	// LockUnprocessedByEmail row-locks the unprocessed signup for email, skipping rows
	// locked by another transaction. Must run inside a transaction.
	LockUnprocessedByEmail(ctx context.Context, email string) (*PendingSignup, error)
	MarkProcessed(ctx context.Context, id uint) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type PaymentHistoryRepository interface {
	// Record appends the payment, or updates status and amount of the row sharing its
	// gateway invoice id.
	Record(ctx context.Context, payment *PaymentHistory) error
	ListByTenant(ctx context.Context, tenantID uint, limit int) ([]*PaymentHistory, error)
}
