package handlers

import (
	"context"

	"github.com/hireloop/hireloop/internal/application/billing/dto"
	"github.com/hireloop/hireloop/internal/application/billing/usecases"
	"github.com/hireloop/hireloop/internal/domain/billing"
)

// Use case interfaces for BillingHandler

type signupUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*usecases.SignupResult, error)
}

type accountStatusUseCase interface {
	Execute(ctx context.Context, email string) (*usecases.AccountStatus, error)
}

type usageSummaryUseCase interface {
	Execute(ctx context.Context, tenantID uint) (*dto.UsageSummaryDTO, error)
}

type checkCapabilityUseCase interface {
	CheckLimit(ctx context.Context, tenantID uint, resource string) (*dto.LimitStatusDTO, error)
	CheckFeature(ctx context.Context, tenantID uint, feature string) (*dto.FeatureStatusDTO, error)
}

type changePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangePlanCommand) (*usecases.ChangePlanResult, error)
}

type addSeatsUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddSeatsCommand) (*usecases.AddSeatsResult, error)
}

type cancelSubscriptionUseCase interface {
	Execute(ctx context.Context, tenantID uint) (*usecases.CancelSubscriptionResult, error)
}

type updatePaymentMethodUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePaymentMethodCommand) (*billing.PaymentMethod, error)
}

type listPaymentsUseCase interface {
	Execute(ctx context.Context, tenantID uint) ([]*dto.PaymentDTO, error)
}

type getPlansUseCase interface {
	Execute(ctx context.Context) *dto.PlanCatalogDTO
}

type handleWebhookUseCase interface {
	Execute(ctx context.Context, cmd usecases.HandleWebhookCommand) (*usecases.HandleWebhookResult, error)
}
