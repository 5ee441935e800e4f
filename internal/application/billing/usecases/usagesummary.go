package usecases

import (
	"context"

	"github.com/hireloop/hireloop/internal/application/billing/dto"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type GetUsageSummaryUseCase struct {
	quota  QuotaService
	logger logger.Interface
}

func NewGetUsageSummaryUseCase(quota QuotaService, logger logger.Interface) *GetUsageSummaryUseCase {
	return &GetUsageSummaryUseCase{quota: quota, logger: logger}
}

func (uc *GetUsageSummaryUseCase) Execute(ctx context.Context, tenantID uint) (*dto.UsageSummaryDTO, error) {
	sub, err := uc.quota.Subscription(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to resolve subscription", "tenant_id", tenantID, "error", err)
		return nil, err
	}
	gate := uc.quota.Gate()
	catalog := gate.Catalog()
	grandfathered := sub.IsGrandfathered()

	jobsUsed, err := uc.quota.Current(ctx, sub, billing.ResourceActiveJobs)
	if err != nil {
		return nil, err
	}
	seatsUsed, err := uc.quota.Current(ctx, sub, billing.ResourceSeats)
	if err != nil {
		return nil, err
	}
	resumesUsed := 0
	if !grandfathered {
		if resumesUsed, err = uc.quota.Current(ctx, sub, billing.ResourceMonthlyResumes); err != nil {
			return nil, err
		}
	}

	summary := &dto.UsageSummaryDTO{
		PlanTier:         sub.Tier(),
		PlanDisplay:      catalog.Plan(sub.Tier()).DisplayName,
		BillingCycle:     sub.Cycle(),
		Status:           sub.Status(),
		IsGrandfathered:  grandfathered,
		JobsLimit:        gate.CheckLimit(sub, billing.ResourceActiveJobs, jobsUsed).Limit,
		ResumesLimit:     gate.CheckLimit(sub, billing.ResourceMonthlyResumes, resumesUsed).Limit,
		SeatsLimit:       gate.CheckLimit(sub, billing.ResourceSeats, seatsUsed).Limit,
		JobsUsed:         jobsUsed,
		ResumesUsed:      resumesUsed,
		SeatsUsed:        seatsUsed,
		HasClaimValidity: gate.CheckFeature(sub, billing.FeatureClaimValidityScore).Allowed,
		HasRedFlag:       gate.CheckFeature(sub, billing.FeatureRedFlagDetection).Allowed,
		HasAnalytics:     gate.CheckFeature(sub, billing.FeatureFullAnalyticsEngine).Allowed,
		ExtraSeats:       sub.ExtraSeats(),
		PaymentMethod:    sub.PaymentMethod(),
	}
	if !grandfathered {
		end := sub.PeriodEnd()
		summary.PeriodEnd = &end
	}
	return summary, nil
}
