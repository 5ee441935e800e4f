package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/mappers"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/models"
	"github.com/hireloop/hireloop/internal/shared/authorization"
	"github.com/hireloop/hireloop/internal/shared/db"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

// UserRepository stores recruiter accounts. Emails are unique across tenants.
type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, user *recruiting.User) error {
	model := mappers.UserToModel(user)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user in database", "error", err, "tenant_id", user.TenantID)
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt

	r.logger.Infow("user created successfully", "id", model.ID, "tenant_id", model.TenantID)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*recruiting.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recruiting.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return mappers.UserToDomain(&model), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*recruiting.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recruiting.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mappers.UserToDomain(&model), nil
}

func (r *UserRepository) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// GetOwner returns the earliest owner account of the tenant.
func (r *UserRepository) GetOwner(ctx context.Context, tenantID uint) (*recruiting.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ? AND role = ?", tenantID, string(authorization.RoleOwner)).
		Order("id ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recruiting.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get tenant owner: %w", err)
	}
	return mappers.UserToDomain(&model), nil
}
