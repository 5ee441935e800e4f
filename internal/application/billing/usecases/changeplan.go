package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hireloop/hireloop/internal/application/billing/paymentgateway"
	"github.com/hireloop/hireloop/internal/domain/billing"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type ChangePlanCommand struct {
	TenantID uint
	Tier     string
	// Cycle keeps the current billing cycle when empty.
	Cycle string
}

type ChangePlanResult struct {
	Tier    billing.Tier         `json:"plan_tier"`
	Cycle   billing.BillingCycle `json:"billing_cycle"`
	Charged decimal.Decimal      `json:"charged"`
	Message string               `json:"message"`
}

type ChangePlanUseCase struct {
	subscriptionRepo billing.SubscriptionRepository
	paymentRepo      billing.PaymentHistoryRepository
	gateway          paymentgateway.PaymentGateway
	catalog          *billing.Catalog
	txManager        TransactionManager
	logger           logger.Interface
}

func NewChangePlanUseCase(
	subscriptionRepo billing.SubscriptionRepository,
	paymentRepo billing.PaymentHistoryRepository,
	gateway paymentgateway.PaymentGateway,
	catalog *billing.Catalog,
	txManager TransactionManager,
	logger logger.Interface,
) *ChangePlanUseCase {
	return &ChangePlanUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		gateway:          gateway,
		catalog:          catalog,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *ChangePlanUseCase) Execute(ctx context.Context, cmd ChangePlanCommand) (*ChangePlanResult, error) {
	sub, err := getStoredSubscription(ctx, uc.subscriptionRepo, cmd.TenantID)
	if err != nil {
		return nil, err
	}
	if sub.IsGrandfathered() {
		return nil, subscriptionError(billing.ErrGrandfatheredPlanChange)
	}

	tier := billing.ParseTier(cmd.Tier)
	if !tier.IsValid() {
		return nil, apperrors.NewValidationError("invalid plan selected")
	}
	cycle := sub.Cycle()
	if cmd.Cycle != "" {
		cycle = billing.BillingCycle(strings.ToLower(strings.TrimSpace(cmd.Cycle)))
	}
	if !cycle.IsValid() {
		return nil, apperrors.NewValidationError("invalid billing cycle")
	}

	newAmount := uc.catalog.Price(tier, cycle)
	oldAmount := uc.catalog.Price(sub.Tier(), sub.Cycle())
	charged := decimal.Max(newAmount.Sub(oldAmount), decimal.Zero)

	if sub.GatewaySubscriptionID() != "" {
		result, err := uc.gateway.UpdateSubscription(ctx, sub.GatewaySubscriptionID(), tier, cycle)
		if err != nil {
			uc.logger.Errorw("gateway subscription update failed", "tenant_id", cmd.TenantID, "error", err)
			return nil, apperrors.NewUpstreamError("failed to update subscription, please try again")
		}
		if !result.Success {
			return nil, gatewayError(result, "failed to update subscription, please try again")
		}
	}

	if err := sub.ChangePlan(tier, cycle); err != nil {
		return nil, subscriptionError(err)
	}

	displayName := uc.catalog.Plan(tier).DisplayName
	payment := billing.NewPayment(sub, charged, billing.PaymentSucceeded,
		fmt.Sprintf("Plan change to %s (%s)", displayName, cycle))

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return err
		}
		return uc.paymentRepo.Record(txCtx, payment)
	})
	if err != nil {
		uc.logger.Errorw("failed to save plan change", "tenant_id", cmd.TenantID, "error", err)
		return nil, fmt.Errorf("failed to save plan change: %w", err)
	}

	uc.logger.Infow("plan changed",
		"tenant_id", cmd.TenantID,
		"plan_tier", tier,
		"billing_cycle", cycle,
		"charged", charged.String(),
	)

	return &ChangePlanResult{
		Tier:    tier,
		Cycle:   cycle,
		Charged: charged,
		Message: fmt.Sprintf("Plan updated to %s!", displayName),
	}, nil
}
