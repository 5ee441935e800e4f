package usecases

import (
	"context"
	"fmt"

	"github.com/hireloop/hireloop/internal/domain/analytics"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type GetJobSummariesUseCase struct {
	tenantRepo    recruiting.TenantRepository
	jobRepo       recruiting.JobRepository
	candidateRepo recruiting.CandidateRepository
	logger        logger.Interface
}

func NewGetJobSummariesUseCase(
	tenantRepo recruiting.TenantRepository,
	jobRepo recruiting.JobRepository,
	candidateRepo recruiting.CandidateRepository,
	logger logger.Interface,
) *GetJobSummariesUseCase {
	return &GetJobSummariesUseCase{
		tenantRepo:    tenantRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		logger:        logger,
	}
}

func (uc *GetJobSummariesUseCase) Execute(ctx context.Context, tenantSlug string) ([]analytics.JobSummary, error) {
	tenant, err := resolveTenant(ctx, uc.tenantRepo, tenantSlug)
	if err != nil {
		return nil, err
	}

	jobs, err := uc.jobRepo.ListByTenant(ctx, tenant.ID)
	if err != nil {
		uc.logger.Errorw("failed to list jobs", "error", err, "tenant", tenant.Slug)
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	codes := make([]string, 0, len(jobs))
	for _, job := range jobs {
		if job.Code != "" {
			codes = append(codes, job.Code)
		}
	}

	candidates, err := uc.candidateRepo.ListByJobCodes(ctx, codes)
	if err != nil {
		uc.logger.Errorw("failed to list candidates", "error", err, "tenant", tenant.Slug)
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return analytics.BuildJobSummaries(jobs, candidates), nil
}
