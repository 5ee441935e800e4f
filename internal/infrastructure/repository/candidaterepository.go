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

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(ctx context.Context, candidate *recruiting.Candidate) error {
	model := mappers.CandidateToModel(candidate)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	candidate.CreatedAt = model.CreatedAt
	return nil
}

func (r *CandidateRepository) Update(ctx context.Context, candidate *recruiting.Candidate) error {
	model := mappers.CandidateToModel(candidate)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CandidateModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"jd_code":       model.JDCode,
			"name":          model.Name,
			"resume_url":    model.ResumeURL,
			"resume_json":   model.ResumeJSON,
			"realism":       model.Realism,
			"fit_score":     model.FitScore,
			"relevancy":     model.Relevancy,
			"questions":     model.Questions,
			"answers":       model.Answers,
			"answer_scores": model.AnswerScores,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update candidate: %w", result.Error)
	}
	return nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.CandidateModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete candidate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return recruiting.ErrCandidateNotFound
	}
	return nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id string) (*recruiting.Candidate, error) {
	var model models.CandidateModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recruiting.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return mappers.CandidateToDomain(&model), nil
}

// List returns one page of candidates, newest first, with the total match count.
func (r *CandidateRepository) List(ctx context.Context, filter recruiting.CandidateFilter) ([]*recruiting.Candidate, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CandidateModel{})
	if filter.TenantID != 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.JDCode != "" {
		query = query.Where("jd_code = ?", filter.JDCode)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	var candidateModels []models.CandidateModel
	if err := query.Order("created_at DESC, id ASC").Find(&candidateModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}

	return mappers.CandidatesToDomain(candidateModels), total, nil
}

func (r *CandidateRepository) ListByJobCodes(ctx context.Context, codes []string) ([]*recruiting.Candidate, error) {
	if len(codes) == 0 {
		return []*recruiting.Candidate{}, nil
	}

	var candidateModels []models.CandidateModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("jd_code IN ?", codes).
		Order("created_at ASC, id ASC").
		Find(&candidateModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates by job codes: %w", err)
	}

	return mappers.CandidatesToDomain(candidateModels), nil
}
