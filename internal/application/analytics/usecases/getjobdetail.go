package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hireloop/hireloop/internal/domain/analytics"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/shared/biztime"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type GetJobDetailQuery struct {
	TenantSlug string
	Code       string
}

type GetJobDetailUseCase struct {
	tenantRepo    recruiting.TenantRepository
	jobRepo       recruiting.JobRepository
	candidateRepo recruiting.CandidateRepository
	logger        logger.Interface
	now           func() time.Time
}

func NewGetJobDetailUseCase(
	tenantRepo recruiting.TenantRepository,
	jobRepo recruiting.JobRepository,
	candidateRepo recruiting.CandidateRepository,
	logger logger.Interface,
) *GetJobDetailUseCase {
	return &GetJobDetailUseCase{
		tenantRepo:    tenantRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		logger:        logger,
		now:           biztime.NowUTC,
	}
}

func (uc *GetJobDetailUseCase) Execute(ctx context.Context, query GetJobDetailQuery) (*analytics.JobDetail, error) {
	tenant, job, err := uc.load(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.candidateRepo.ListByJobCodes(ctx, []string{job.Code})
	if err != nil {
		uc.logger.Errorw("failed to list candidates", "error", err, "tenant", tenant.Slug, "jd_code", job.Code)
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return analytics.BuildJobDetail(job, candidates, uc.now()), nil
}

func (uc *GetJobDetailUseCase) load(ctx context.Context, query GetJobDetailQuery) (*recruiting.Tenant, *recruiting.JobDescription, error) {
	tenant, err := resolveTenant(ctx, uc.tenantRepo, query.TenantSlug)
	if err != nil {
		return nil, nil, err
	}

	code := strings.TrimSpace(query.Code)
	job, err := uc.jobRepo.GetByCode(ctx, tenant.ID, code)
	if err != nil {
		if errors.Is(err, recruiting.ErrJobNotFound) {
			return nil, nil, apperrors.NewNotFoundError("job not found", code)
		}
		return nil, nil, fmt.Errorf("failed to get job: %w", err)
	}
	return tenant, job, nil
}
