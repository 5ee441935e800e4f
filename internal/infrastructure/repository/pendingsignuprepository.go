package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/mappers"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/models"
	"github.com/hireloop/hireloop/internal/shared/db"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type PendingSignupRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPendingSignupRepository(db *gorm.DB, logger logger.Interface) *PendingSignupRepository {
	return &PendingSignupRepository{db: db, logger: logger}
}

func (r *PendingSignupRepository) Upsert(ctx context.Context, signup *billing.PendingSignup) error {
	model := mappers.PendingSignupToModel(signup)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"plan_tier", "billing_cycle", "company_name", "full_name",
			"password_hash", "expires_at", "processed", "created_at", "updated_at",
		}),
	}).Create(model).Error; err != nil {
		r.logger.Errorw("failed to upsert pending signup", "error", err)
		return fmt.Errorf("failed to save pending signup: %w", err)
	}

	// The generated id is not reported reliably on the update branch.
	var stored models.PendingSignupModel
	if err := tx.Select("id").Where("email = ?", model.Email).First(&stored).Error; err != nil {
		return fmt.Errorf("failed to reload pending signup: %w", err)
	}
	signup.ID = stored.ID
	return nil
}

func (r *PendingSignupRepository) GetByEmail(ctx context.Context, email string) (*billing.PendingSignup, error) {
	var model models.PendingSignupModel
	if err := db.GetTxFromContext(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, billing.ErrPendingSignupNotFound
		}
		return nil, fmt.Errorf("failed to get pending signup: %w", err)
	}
	return mappers.PendingSignupToDomain(&model), nil
}

func (r *PendingSignupRepository) LockUnprocessedByEmail(ctx context.Context, email string) (*billing.PendingSignup, error) {
	var model models.PendingSignupModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForUpdateSkipLocked()).
		Where("email = ? AND processed = ?", email, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, billing.ErrPendingSignupNotFound
		}
		return nil, fmt.Errorf("failed to lock pending signup: %w", err)
	}
	return mappers.PendingSignupToDomain(&model), nil
}

func (r *PendingSignupRepository) MarkProcessed(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PendingSignupModel{}).
		Where("id = ?", id).
		Update("processed", true).Error; err != nil {
		return fmt.Errorf("failed to mark pending signup processed: %w", err)
	}
	return nil
}

func (r *PendingSignupRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("expires_at <= ?", now).
		Delete(&models.PendingSignupModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired pending signups: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		r.logger.Infow("expired pending signups removed", "count", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
