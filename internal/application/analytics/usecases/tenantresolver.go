package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/hireloop/hireloop/internal/domain/recruiting"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
)

func resolveTenant(ctx context.Context, repo recruiting.TenantRepository, slug string) (*recruiting.Tenant, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperrors.NewValidationError("tenant is required")
	}
	tenant, err := repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, recruiting.ErrTenantNotFound) {
			return nil, apperrors.NewNotFoundError("tenant not found", slug)
		}
		return nil, err
	}
	return tenant, nil
}
