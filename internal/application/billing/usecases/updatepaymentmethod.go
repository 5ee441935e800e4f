package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type UpdatePaymentMethodCommand struct {
	TenantID   uint
	CardNumber string
	ExpMonth   int
	ExpYear    int
	CVC        string
}

type UpdatePaymentMethodUseCase struct {
	subscriptionRepo billing.SubscriptionRepository
	gateway          paymentgateway.PaymentGateway
	logger           logger.Interface
}

func NewUpdatePaymentMethodUseCase(
	subscriptionRepo billing.SubscriptionRepository,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
) *UpdatePaymentMethodUseCase {
	return &UpdatePaymentMethodUseCase{
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		logger:           logger,
	}
}

func (uc *UpdatePaymentMethodUseCase) Execute(ctx context.Context, cmd UpdatePaymentMethodCommand) (*billing.PaymentMethod, error) {
	if strings.TrimSpace(cmd.CardNumber) == "" || cmd.ExpMonth < 1 || cmd.ExpMonth > 12 || cmd.ExpYear <= 0 {
		return nil, apperrors.NewValidationError("card number and a valid expiry are required")
	}

	sub, err := getStoredSubscription(ctx, uc.subscriptionRepo, cmd.TenantID)
	if err != nil {
		return nil, err
	}
	if sub.GatewayCustomerID() == "" {
		return nil, apperrors.NewBadRequestError("unable to update payment method, please contact support")
	}

	result, err := uc.gateway.AttachPaymentMethod(ctx, sub.GatewayCustomerID(), paymentgateway.CardDetails{
		Number:   cmd.CardNumber,
		ExpMonth: cmd.ExpMonth,
		ExpYear:  cmd.ExpYear,
		CVC:      strings.TrimSpace(cmd.CVC),
	})
	if err != nil {
		uc.logger.Errorw("gateway payment method update failed", "tenant_id", cmd.TenantID, "error", err)
		return nil, apperrors.NewUpstreamError("failed to update payment method")
	}
	if !result.Success {
		return nil, gatewayError(result, "failed to update payment method")
	}

	card := billing.PaymentMethod{ExpMonth: cmd.ExpMonth, ExpYear: cmd.ExpYear}
	if result.Card != nil {
		card = *result.Card
	}
	sub.SetPaymentMethod(card)
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save payment method", "tenant_id", cmd.TenantID, "error", err)
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}

	uc.logger.Infow("payment method updated", "tenant_id", cmd.TenantID, "brand", card.Brand, "last4", card.Last4)
	return &card, nil
}
