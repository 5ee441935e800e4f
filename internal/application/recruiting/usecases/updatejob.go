package usecases

import (
	"context"
	"errors"
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

// UpdateJobCommand changes only the fields that are set.
type UpdateJobCommand struct {
	TenantID   uint
	Code       string
	Title      *string
	Body       *string
	Status     *string
	Department *string
	Team       *string
	StartDate  *time.Time
}

type UpdateJobUseCase struct {
	jobRepo  recruiting.JobRepository
	quota    QuotaService
	renderer HTMLRenderer
	logger   logger.Interface
}

func NewUpdateJobUseCase(
	jobRepo recruiting.JobRepository,
	quota QuotaService,
	renderer HTMLRenderer,
	logger logger.Interface,
) *UpdateJobUseCase {
	return &UpdateJobUseCase{
		jobRepo:  jobRepo,
		quota:    quota,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *UpdateJobUseCase) Execute(ctx context.Context, cmd UpdateJobCommand) (*dto.JobDTO, error) {
	job, err := getTenantJob(ctx, uc.jobRepo, cmd.TenantID, cmd.Code)
	if err != nil {
		return nil, err
	}
	wasActive := job.Status.CountsAsActive()

	if cmd.Title != nil {
		job.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Body != nil {
		job.Body = *cmd.Body
	}
	if cmd.Status != nil {
		job.Status = recruiting.JobStatus(strings.TrimSpace(*cmd.Status))
	}
	if cmd.Department != nil {
		job.Department = strings.TrimSpace(*cmd.Department)
	}
	if cmd.Team != nil {
		job.Team = strings.TrimSpace(*cmd.Team)
	}
	if cmd.StartDate != nil {
		job.StartDate = cmd.StartDate
	}
	if err := job.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if !wasActive && job.Status.CountsAsActive() {
		check, err := uc.quota.CheckLimit(ctx, cmd.TenantID, billing.ResourceActiveJobs)
		if err != nil {
			return nil, fmt.Errorf("failed to check active jobs limit: %w", err)
		}
		if err := quota.LimitDenied(check); err != nil {
			return nil, err
		}
	}

	if cmd.Body != nil {
		html, err := uc.renderer.Render(job.Body)
		if err != nil {
			return nil, apperrors.NewValidationError("job body could not be rendered", err.Error())
		}
		job.HTML = html
	}

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		uc.logger.Errorw("failed to update job", "error", err, "tenant_id", cmd.TenantID, "code", job.Code)
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	uc.logger.Infow("job updated", "tenant_id", cmd.TenantID, "code", job.Code, "status", job.Status)
	return dto.ToJobDTO(job), nil
}

func getTenantJob(ctx context.Context, repo recruiting.JobRepository, tenantID uint, code string) (*recruiting.JobDescription, error) {
	code = strings.TrimSpace(code)
	job, err := repo.GetByCode(ctx, tenantID, code)
	if err != nil {
		if errors.Is(err, recruiting.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job not found", code)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}
