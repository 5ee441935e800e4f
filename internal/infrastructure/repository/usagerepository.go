package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/mappers"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/models"
	"github.com/hireloop/hireloop/internal/shared/db"
)

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) GetCurrent(ctx context.Context, tenantID uint, at time.Time) (*billing.TenantUsage, error) {
	var model models.TenantUsageModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ? AND period_start <= ? AND period_end > ?", tenantID, at, at).
		Order("period_start DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current usage: %w", err)
	}
	return mappers.UsageToDomain(&model), nil
}

func (r *UsageRepository) Create(ctx context.Context, usage *billing.TenantUsage) error {
	model := mappers.UsageToModel(usage)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create usage record: %w", err)
	}
	usage.ID = model.ID
	usage.CreatedAt = model.CreatedAt
	usage.UpdatedAt = model.UpdatedAt
	return nil
}

// IncrementResumes bumps the counter in place so concurrent applications do not lose updates.
func (r *UsageRepository) IncrementResumes(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TenantUsageModel{}).
		Where("id = ?", id).
		UpdateColumn("resumes_reviewed", gorm.Expr("resumes_reviewed + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("failed to increment resume usage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("usage record %d not found", id)
	}
	return nil
}
