package usecases

import (
	"context"
	"strings"

	"github.com/hireloop/hireloop/internal/application/billing/dto"
	"github.com/hireloop/hireloop/internal/domain/billing"
	apperrors "github.com/hireloop/hireloop/internal/shared/errors"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

// resourceAliases accepts the short names used by the dashboard.
var resourceAliases = map[string]billing.Resource{
	"jobs":    billing.ResourceActiveJobs,
	"resumes": billing.ResourceMonthlyResumes,
}

func ParseResource(s string) (billing.Resource, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if r, ok := resourceAliases[s]; ok {
		return r, true
	}
	r := billing.Resource(s)
	return r, r.IsValid()
}

type CheckCapabilityUseCase struct {
	quota  QuotaService
	logger logger.Interface
}

func NewCheckCapabilityUseCase(quota QuotaService, logger logger.Interface) *CheckCapabilityUseCase {
	return &CheckCapabilityUseCase{quota: quota, logger: logger}
}

func (uc *CheckCapabilityUseCase) CheckLimit(ctx context.Context, tenantID uint, resource string) (*dto.LimitStatusDTO, error) {
	r, ok := ParseResource(resource)
	if !ok {
		return nil, apperrors.NewValidationError("unknown resource", resource)
	}
	check, err := uc.quota.CheckLimit(ctx, tenantID, r)
	if err != nil {
		uc.logger.Errorw("limit check failed", "tenant_id", tenantID, "resource", r, "error", err)
		return nil, err
	}
	return dto.ToLimitStatusDTO(check), nil
}

func (uc *CheckCapabilityUseCase) CheckFeature(ctx context.Context, tenantID uint, feature string) (*dto.FeatureStatusDTO, error) {
	f := billing.Feature(strings.ToLower(strings.TrimSpace(feature)))
	if !uc.quota.Gate().Catalog().IsKnownFeature(f) {
		return nil, apperrors.NewValidationError("unknown feature", feature)
	}
	check, err := uc.quota.CheckFeature(ctx, tenantID, f)
	if err != nil {
		uc.logger.Errorw("feature check failed", "tenant_id", tenantID, "feature", f, "error", err)
		return nil, err
	}
	return dto.ToFeatureStatusDTO(check), nil
}
