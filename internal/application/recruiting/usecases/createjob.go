package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hireloop/hireloop/internal/application/billing/quota"
	"github.com/hireloop/hireloop/internal/application/recruiting/dto"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type CreateJobCommand struct {
	TenantID   uint
	Code       string
	Title      string
	Body       string
	Status     string
	Department string
	Team       string
	StartDate  *time.Time
}

type CreateJobUseCase struct {
	tenantRepo recruiting.TenantRepository
	jobRepo    recruiting.JobRepository
	quota      QuotaService
	renderer   HTMLRenderer
	logger     logger.Interface
}

func NewCreateJobUseCase(
	tenantRepo recruiting.TenantRepository,
	jobRepo recruiting.JobRepository,
	quota QuotaService,
	renderer HTMLRenderer,
	logger logger.Interface,
) *CreateJobUseCase {
	return &CreateJobUseCase{
		tenantRepo: tenantRepo,
		jobRepo:    jobRepo,
		quota:      quota,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *CreateJobUseCase) Execute(ctx context.Context, cmd CreateJobCommand) (*dto.JobDTO, error) {
	status := recruiting.JobStatus(strings.TrimSpace(cmd.Status))
	if status == "" {
		status = recruiting.JobStatusOpen
	}
	job := &recruiting.JobDescription{
		TenantID:   cmd.TenantID,
		Code:       strings.TrimSpace(cmd.Code),
		Title:      strings.TrimSpace(cmd.Title),
		Body:       cmd.Body,
		Status:     status,
		Department: strings.TrimSpace(cmd.Department),
		Team:       strings.TrimSpace(cmd.Team),
		StartDate:  cmd.StartDate,
	}
	if err := job.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	tenant, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	exists, err := uc.jobRepo.CodeExists(ctx, job.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check job code: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("job code already exists", job.Code)
	}

	if job.Status.CountsAsActive() {
		check, err := uc.quota.CheckLimit(ctx, cmd.TenantID, billing.ResourceActiveJobs)
		if err != nil {
			return nil, fmt.Errorf("failed to check active jobs limit: %w", err)
		}
		if err := quota.LimitDenied(check); err != nil {
			uc.logger.Infow("job creation denied by plan limit",
				"tenant_id", cmd.TenantID,
				"current", check.Current,
				"limit", check.Limit,
			)
			return nil, err
		}
	}

	html, err := uc.renderer.Render(job.Body)
	if err != nil {
		return nil, apperrors.NewValidationError("job body could not be rendered", err.Error())
	}
	job.HTML = html
	job.Slug = recruiting.JobSlug(tenant.Slug, job.Code)

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		uc.logger.Errorw("failed to create job", "error", err, "tenant_id", cmd.TenantID, "code", job.Code)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	uc.logger.Infow("job created", "tenant_id", cmd.TenantID, "code", job.Code, "status", job.Status)
	return dto.ToJobDTO(job), nil
}
