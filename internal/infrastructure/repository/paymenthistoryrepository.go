package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/mappers"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/models"
	"github.com/hireloop/hireloop/internal/shared/db"
)

type PaymentHistoryRepository struct {
	db *gorm.DB
}

func NewPaymentHistoryRepository(db *gorm.DB) *PaymentHistoryRepository {
	return &PaymentHistoryRepository{db: db}
}

func (r *PaymentHistoryRepository) Record(ctx context.Context, payment *billing.PaymentHistory) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := mappers.PaymentToModel(payment)

	if model.GatewayInvoiceID != nil {
		var existing models.PaymentHistoryModel
		err := tx.Where("gateway_invoice_id = ?", *model.GatewayInvoiceID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"status": model.Status,
				"amount": model.Amount,
			}).Error; err != nil {
				return fmt.Errorf("failed to update payment history: %w", err)
			}
			payment.ID = existing.ID
			payment.CreatedAt = existing.CreatedAt
			return nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to look up payment by invoice: %w", err)
		}
	}

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	payment.ID = model.ID
	payment.CreatedAt = model.CreatedAt
	return nil
}

func (r *PaymentHistoryRepository) ListByTenant(ctx context.Context, tenantID uint, limit int) ([]*billing.PaymentHistory, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var paymentModels []models.PaymentHistoryModel
	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment history: %w", err)
	}

	payments := make([]*billing.PaymentHistory, len(paymentModels))
	for i := range paymentModels {
		payments[i] = mappers.PaymentToDomain(&paymentModels[i])
	}
	return payments, nil
}
