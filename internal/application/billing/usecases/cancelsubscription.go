package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/shared/biztime"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type CancelSubscriptionResult struct {
	Status     billing.Status `json:"status"`
	CanceledAt *time.Time     `json:"canceled_at"`
	AccessEnds time.Time      `json:"access_ends"`
}

// CancelSubscriptionUseCase cancels at the end of the paid period on the gateway side
// and marks the local subscription canceled immediately.
type CancelSubscriptionUseCase struct {
	subscriptionRepo billing.SubscriptionRepository
	gateway          paymentgateway.PaymentGateway
	logger           logger.Interface
	now              func() time.Time
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo billing.SubscriptionRepository,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		logger:           logger,
		now:              biztime.NowUTC,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, tenantID uint) (*CancelSubscriptionResult, error) {
	sub, err := getStoredSubscription(ctx, uc.subscriptionRepo, tenantID)
	if err != nil {
		return nil, err
	}
	switch {
	case sub.IsGrandfathered():
		return nil, subscriptionError(billing.ErrGrandfatheredCancel)
	case sub.Status() == billing.StatusCanceled:
		return nil, subscriptionError(billing.ErrAlreadyCanceled)
	}

	if sub.GatewaySubscriptionID() != "" {
		result, err := uc.gateway.CancelSubscription(ctx, sub.GatewaySubscriptionID(), true)
		if err != nil {
			uc.logger.Errorw("gateway cancellation failed", "tenant_id", tenantID, "error", err)
			return nil, apperrors.NewUpstreamError("failed to cancel subscription, please try again")
		}
		if !result.Success {
			return nil, gatewayError(result, "failed to cancel subscription, please try again")
		}
	}

	if err := sub.Cancel(uc.now()); err != nil {
		return nil, subscriptionError(err)
	}
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save cancellation", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to save cancellation: %w", err)
	}

	uc.logger.Infow("subscription canceled", "tenant_id", tenantID)
	return &CancelSubscriptionResult{
		Status:     sub.Status(),
		CanceledAt: sub.CanceledAt(),
		AccessEnds: sub.PeriodEnd(),
	}, nil
}
