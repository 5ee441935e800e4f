package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hireloop/hireloop/internal/application/recruiting/dto"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type GetJobUseCase struct {
	jobRepo recruiting.JobRepository
	logger  logger.Interface
}

func NewGetJobUseCase(jobRepo recruiting.JobRepository, logger logger.Interface) *GetJobUseCase {
	return &GetJobUseCase{jobRepo: jobRepo, logger: logger}
}

func (uc *GetJobUseCase) Execute(ctx context.Context, tenantID uint, code string) (*dto.JobDTO, error) {
	job, err := getTenantJob(ctx, uc.jobRepo, tenantID, code)
	if err != nil {
		return nil, err
	}
	return dto.ToJobDTO(job), nil
}

type ListJobsUseCase struct {
	jobRepo recruiting.JobRepository
	logger  logger.Interface
}

func NewListJobsUseCase(jobRepo recruiting.JobRepository, logger logger.Interface) *ListJobsUseCase {
	return &ListJobsUseCase{jobRepo: jobRepo, logger: logger}
}

func (uc *ListJobsUseCase) Execute(ctx context.Context, tenantID uint) ([]*dto.JobDTO, error) {
	jobs, err := uc.jobRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list jobs", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return dto.ToJobDTOList(jobs), nil
}

// GetJobPostingUseCase serves the public apply page. Only open jobs are visible.
type GetJobPostingUseCase struct {
	jobRepo recruiting.JobRepository
}

func NewGetJobPostingUseCase(jobRepo recruiting.JobRepository) *GetJobPostingUseCase {
	return &GetJobPostingUseCase{jobRepo: jobRepo}
}

func (uc *GetJobPostingUseCase) Execute(ctx context.Context, slug string) (*dto.JobPostingDTO, error) {
	job, err := getOpenJobBySlug(ctx, uc.jobRepo, slug)
	if err != nil {
		return nil, err
	}
	return dto.ToJobPostingDTO(job), nil
}

func getOpenJobBySlug(ctx context.Context, repo recruiting.JobRepository, slug string) (*recruiting.JobDescription, error) {
	slug = strings.TrimSpace(slug)
	job, err := repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, recruiting.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job not found", slug)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job.Status != recruiting.JobStatusOpen {
		return nil, apperrors.NewNotFoundError("job is not accepting applications", slug)
	}
	return job, nil
}
