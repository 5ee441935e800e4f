package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type AccountStatus struct {
	AccountCreated bool   `json:"account_created"`
	TenantSlug     string `json:"tenant,omitempty"`
}

// AccountStatusUseCase is polled after payment until the webhook has created the account.
type AccountStatusUseCase struct {
	userRepo   recruiting.UserRepository
	tenantRepo recruiting.TenantRepository
	logger     logger.Interface
}

func NewAccountStatusUseCase(
	userRepo recruiting.UserRepository,
	tenantRepo recruiting.TenantRepository,
	logger logger.Interface,
) *AccountStatusUseCase {
	return &AccountStatusUseCase{userRepo: userRepo, tenantRepo: tenantRepo, logger: logger}
}

func (uc *AccountStatusUseCase) Execute(ctx context.Context, email string) (*AccountStatus, error) {
	email = billing.NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewValidationError("email is required")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, recruiting.ErrUserNotFound) {
			return &AccountStatus{}, nil
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	status := &AccountStatus{AccountCreated: true}
	tenant, err := uc.tenantRepo.GetByID(ctx, user.TenantID)
	switch {
	case err == nil:
		status.TenantSlug = tenant.Slug
	case errors.Is(err, recruiting.ErrTenantNotFound):
		uc.logger.Warnw("account has no tenant", "user_id", user.ID)
	default:
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return status, nil
}
