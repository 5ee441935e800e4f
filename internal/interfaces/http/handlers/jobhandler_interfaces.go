package handlers

import (
	"context"

	"github.com/hireloop/hireloop/internal/application/recruiting/dto"
	"github.com/hireloop/hireloop/internal/application/recruiting/usecases"
)

// Use case interfaces for JobHandler

type createJobUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateJobCommand) (*dto.JobDTO, error)
}

type updateJobUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateJobCommand) (*dto.JobDTO, error)
}

type getJobUseCase interface {
	Execute(ctx context.Context, tenantID uint, code string) (*dto.JobDTO, error)
}

type listJobsUseCase interface {
	Execute(ctx context.Context, tenantID uint) ([]*dto.JobDTO, error)
}

type deleteJobUseCase interface {
	Execute(ctx context.Context, tenantID uint, code string) error
}
