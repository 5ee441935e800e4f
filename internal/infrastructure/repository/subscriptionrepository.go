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
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type SubscriptionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) *SubscriptionRepository {
	return &SubscriptionRepository{db: db, logger: logger}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *billing.TenantSubscription) error {
	if sub.IsVirtual() {
		return fmt.Errorf("grandfathered subscriptions are not persisted")
	}

	model := mappers.SubscriptionToModel(sub)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "error", err, "tenant_id", sub.TenantID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	sub.SetID(model.ID)

	r.logger.Infow("subscription created",
		"id", model.ID,
		"tenant_id", model.TenantID,
		"tier", model.PlanTier,
		"cycle", model.BillingCycle,
	)
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *billing.TenantSubscription) error {
	model := mappers.SubscriptionToModel(sub)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TenantSubscriptionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"plan_tier":               model.PlanTier,
			"billing_cycle":           model.BillingCycle,
			"status":                  model.Status,
			"current_period_start":    model.CurrentPeriodStart,
			"current_period_end":      model.CurrentPeriodEnd,
			"canceled_at":             model.CanceledAt,
			"extra_seats":             model.ExtraSeats,
			"gateway_customer_id":     model.GatewayCustomerID,
			"gateway_subscription_id": model.GatewaySubscriptionID,
			"payment_method":          model.PaymentMethod,
			"updated_at":              model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	return nil
}

func (r *SubscriptionRepository) GetByTenantID(ctx context.Context, tenantID uint) (*billing.TenantSubscription, error) {
	return r.first(ctx, "tenant_id = ?", tenantID)
}

func (r *SubscriptionRepository) GetByGatewaySubscriptionID(ctx context.Context, id string) (*billing.TenantSubscription, error) {
	return r.first(ctx, "gateway_subscription_id = ?", id)
}

func (r *SubscriptionRepository) GetByGatewayCustomerID(ctx context.Context, id string) (*billing.TenantSubscription, error) {
	return r.first(ctx, "gateway_customer_id = ?", id)
}

func (r *SubscriptionRepository) first(ctx context.Context, query string, arg interface{}) (*billing.TenantSubscription, error) {
	var model models.TenantSubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).Order("id DESC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, billing.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return mappers.SubscriptionToDomain(&model)
}
