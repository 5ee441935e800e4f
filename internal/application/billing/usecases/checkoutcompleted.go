package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/shared/authorization"
)

const defaultTenantSlug = "tenant"

type createdAccount struct {
	email       string
	fullName    string
	companyName string
	tenantSlug  string
}

// handleCheckoutCompleted turns the pending signup of the paying email into a tenant,
// its owner and a subscription. The signup row is locked and flagged processed in the
// same transaction, so replays and concurrent deliveries create at most one account.
func (uc *HandleWebhookUseCase) handleCheckoutCompleted(ctx context.Context, event *paymentgateway.WebhookEvent) error {
	checkout := event.Checkout
	if checkout == nil {
		return errMissingObject
	}
	addr := billing.NormalizeEmail(checkout.Email)
	if addr == "" {
		return fmt.Errorf("checkout %s has no customer email", checkout.ID)
	}

	var account *createdAccount
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		signup, err := uc.pendingRepo.LockUnprocessedByEmail(txCtx, addr)
		if err != nil {
			if errors.Is(err, billing.ErrPendingSignupNotFound) {
				uc.logger.Infow("no unprocessed pending signup for checkout", "checkout_id", checkout.ID)
				return nil
			}
			return err
		}
		if signup.IsExpired(uc.now()) {
			uc.logger.Warnw("pending signup expired before payment", "checkout_id", checkout.ID, "expired_at", signup.ExpiresAt)
			return nil
		}

		if _, err := uc.userRepo.GetByEmail(txCtx, addr); err == nil {
			uc.logger.Warnw("account already exists for checkout email", "checkout_id", checkout.ID)
			return uc.pendingRepo.MarkProcessed(txCtx, signup.ID)
		} else if !errors.Is(err, recruiting.ErrUserNotFound) {
			return err
		}

		account, err = uc.createAccount(txCtx, signup, checkout)
		if err != nil {
			return err
		}
		return uc.pendingRepo.MarkProcessed(txCtx, signup.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to create account from checkout: %w", err)
	}
	if account == nil {
		return nil
	}

	uc.logger.Infow("account created from checkout",
		"checkout_id", checkout.ID,
		"tenant", account.tenantSlug,
	)
	if uc.notifier != nil {
		if err := uc.notifier.SendWelcome(account.email, account.fullName, account.companyName, account.tenantSlug); err != nil {
			uc.logger.Warnw("welcome email not sent", "tenant", account.tenantSlug, "error", err)
		}
	}
	return nil
}

func (uc *HandleWebhookUseCase) createAccount(ctx context.Context, signup *billing.PendingSignup, checkout *paymentgateway.CheckoutObject) (*createdAccount, error) {
	slug, err := uc.uniqueTenantSlug(ctx, signup.CompanyName)
	if err != nil {
		return nil, err
	}

	tenant := &recruiting.Tenant{Slug: slug, DisplayName: signup.CompanyName}
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	owner := &recruiting.User{
		TenantID:     tenant.ID,
		Email:        signup.Email,
		FullName:     signup.FullName,
		PasswordHash: signup.PasswordHash,
		Role:         authorization.RoleOwner,
	}
	if err := uc.userRepo.Create(ctx, owner); err != nil {
		return nil, err
	}

	sub, err := billing.NewTenantSubscription(tenant.ID, signup.Tier, signup.Cycle, uc.now())
	if err != nil {
		return nil, err
	}
	sub.SetGatewayIDs(checkout.CustomerID, checkout.SubscriptionID)
	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return &createdAccount{
		email:       signup.Email,
		fullName:    signup.FullName,
		companyName: signup.CompanyName,
		tenantSlug:  slug,
	}, nil
}

// uniqueTenantSlug appends -1, -2, ... to the slug derived from the company name until
// it is free.
func (uc *HandleWebhookUseCase) uniqueTenantSlug(ctx context.Context, companyName string) (string, error) {
	base := recruiting.BaseTenantSlug(companyName)
	if base == "" {
		base = defaultTenantSlug
	}
	slug := base
	for n := 1; ; n++ {
		exists, err := uc.tenantRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}
