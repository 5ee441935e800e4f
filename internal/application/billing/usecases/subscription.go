package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
)

// getStoredSubscription loads the tenant's persisted subscription. Account management
// needs a real row; the virtual grandfathered subscription is reported as missing.
func getStoredSubscription(ctx context.Context, repo billing.SubscriptionRepository, tenantID uint) (*billing.TenantSubscription, error) {
	sub, err := repo.GetByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, billing.ErrSubscriptionNotFound) {
			return nil, apperrors.NewNotFoundError("no subscription found")
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return sub, nil
}

// subscriptionError maps domain rule violations onto client errors.
func subscriptionError(err error) error {
	switch {
	case errors.Is(err, billing.ErrGrandfatheredPlanChange),
		errors.Is(err, billing.ErrGrandfatheredSeats),
		errors.Is(err, billing.ErrGrandfatheredCancel),
		errors.Is(err, billing.ErrAlreadyCanceled):
		return apperrors.NewConflictError(err.Error())
	case errors.Is(err, billing.ErrInvalidTier),
		errors.Is(err, billing.ErrInvalidCycle),
		errors.Is(err, billing.ErrInvalidSeatCount):
		return apperrors.NewValidationError(err.Error())
	}
	return err
}

// gatewayError turns a declined or failed gateway Result into a client error.
func gatewayError(result *paymentgateway.Result, fallback string) error {
	msg := result.ErrorMessage
	if msg == "" {
		msg = fallback
	}
	return apperrors.NewBadRequestError(msg)
}
