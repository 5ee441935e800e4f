package usecases

import (
	"context"
	"fmt"

	"github.com/hireloop/hireloop/internal/application/billing/dto"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

const paymentHistoryLimit = 50

type GetPlansUseCase struct {
	catalog *billing.Catalog
}

func NewGetPlansUseCase(catalog *billing.Catalog) *GetPlansUseCase {
	return &GetPlansUseCase{catalog: catalog}
}

func (uc *GetPlansUseCase) Execute(ctx context.Context) *dto.PlanCatalogDTO {
	return dto.ToPlanCatalogDTO(uc.catalog)
}

// ListPaymentsUseCase returns the most recent payment history rows of a tenant.
type ListPaymentsUseCase struct {
	paymentRepo billing.PaymentHistoryRepository
	logger      logger.Interface
}

func NewListPaymentsUseCase(paymentRepo billing.PaymentHistoryRepository, logger logger.Interface) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{paymentRepo: paymentRepo, logger: logger}
}

func (uc *ListPaymentsUseCase) Execute(ctx context.Context, tenantID uint) ([]*dto.PaymentDTO, error) {
	payments, err := uc.paymentRepo.ListByTenant(ctx, tenantID, paymentHistoryLimit)
	if err != nil {
		uc.logger.Errorw("failed to list payments", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return dto.ToPaymentDTOList(payments), nil
}
