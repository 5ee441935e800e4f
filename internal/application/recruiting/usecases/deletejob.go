package usecases

import (
	"context"
	"fmt"

	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type DeleteJobUseCase struct {
	jobRepo recruiting.JobRepository
	logger  logger.Interface
}

func NewDeleteJobUseCase(jobRepo recruiting.JobRepository, logger logger.Interface) *DeleteJobUseCase {
	return &DeleteJobUseCase{jobRepo: jobRepo, logger: logger}
}

// Execute removes the job. Its candidates stay in place and remain listed by code.
func (uc *DeleteJobUseCase) Execute(ctx context.Context, tenantID uint, code string) error {
	job, err := getTenantJob(ctx, uc.jobRepo, tenantID, code)
	if err != nil {
		return err
	}

	if err := uc.jobRepo.Delete(ctx, tenantID, job.Code); err != nil {
		uc.logger.Errorw("failed to delete job", "error", err, "tenant_id", tenantID, "code", job.Code)
		return fmt.Errorf("failed to delete job: %w", err)
	}

	uc.logger.Infow("job deleted", "tenant_id", tenantID, "code", job.Code)
	return nil
}
