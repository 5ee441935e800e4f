package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/mappers"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/models"
	"github.com/hireloop/hireloop/internal/shared/db"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *recruiting.JobDescription) error {
	model := mappers.JobToModel(job)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create job description: %w", err)
	}
	job.ID = model.ID
	job.CreatedAt = model.CreatedAt
	return nil
}

func (r *JobRepository) Update(ctx context.Context, job *recruiting.JobDescription) error {
	model := mappers.JobToModel(job)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.JobDescriptionModel{}).
		Where("id = ? AND tenant_id = ?", model.ID, model.TenantID).
		Updates(map[string]interface{}{
			"title":      model.Title,
			"body":       model.Body,
			"html":       model.HTML,
			"status":     model.Status,
			"department": model.Department,
			"team":       model.Team,
			"start_date": model.StartDate,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update job description: %w", result.Error)
	}
	return nil
}

// Delete removes the job only. Candidates that reference its code are kept.
func (r *JobRepository) Delete(ctx context.Context, tenantID uint, code string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		Delete(&models.JobDescriptionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job description: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return recruiting.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) GetByCode(ctx context.Context, tenantID uint, code string) (*recruiting.JobDescription, error) {
	var model models.JobDescriptionModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recruiting.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}
	return mappers.JobToDomain(&model), nil
}

func (r *JobRepository) GetBySlug(ctx context.Context, slug string) (*recruiting.JobDescription, error) {
	var model models.JobDescriptionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recruiting.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job description by slug: %w", err)
	}
	return mappers.JobToDomain(&model), nil
}

func (r *JobRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*recruiting.JobDescription, error) {
	var jobModels []models.JobDescriptionModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Order("id ASC").
		Find(&jobModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}

	jobs := make([]*recruiting.JobDescription, len(jobModels))
	for i := range jobModels {
		jobs[i] = mappers.JobToDomain(&jobModels[i])
	}
	return jobs, nil
}

func (r *JobRepository) CountActiveByTenant(ctx context.Context, tenantID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.JobDescriptionModel{}).
		Where("tenant_id = ? AND status = ?", tenantID, string(recruiting.JobStatusOpen)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active jobs: %w", err)
	}
	return count, nil
}

// CodeExists checks the code across all tenants; job codes are globally unique.
func (r *JobRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.JobDescriptionModel{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check job code: %w", err)
	}
	return count > 0, nil
}
