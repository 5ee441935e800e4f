// Package quota resolves a tenant's subscription and measures usage against its plan.
package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/shared/biztime"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

type Service struct {
	subscriptionRepo billing.SubscriptionRepository
	usageRepo        billing.UsageRepository
	jobRepo          recruiting.JobRepository
	userRepo         recruiting.UserRepository
	gate             *billing.Gate
	logger           logger.Interface
	now              func() time.Time
}

func NewService(
	subscriptionRepo billing.SubscriptionRepository,
	usageRepo billing.UsageRepository,
	jobRepo recruiting.JobRepository,
	userRepo recruiting.UserRepository,
	gate *billing.Gate,
	logger logger.Interface,
) *Service {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		usageRepo:        usageRepo,
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		gate:             gate,
		logger:           logger,
		now:              biztime.NowUTC,
	}
}

func (s *Service) Gate() *billing.Gate { return s.gate }

// Subscription returns the stored subscription, or the virtual grandfathered one when
// the tenant has none.
func (s *Service) Subscription(ctx context.Context, tenantID uint) (*billing.TenantSubscription, error) {
	sub, err := s.subscriptionRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, billing.ErrSubscriptionNotFound) {
			return billing.Grandfathered(tenantID, s.now()), nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return sub, nil
}

// CurrentUsage returns the usage record covering now, opening a new one for the
// current billing period when none exists.
func (s *Service) CurrentUsage(ctx context.Context, sub *billing.TenantSubscription) (*billing.TenantUsage, error) {
	now := s.now()
	usage, err := s.usageRepo.GetCurrent(ctx, sub.TenantID(), now)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage: %w", err)
	}
	if usage != nil {
		return usage, nil
	}

	start, end := billing.UsagePeriod(sub, now)
	usage = &billing.TenantUsage{
		TenantID:    sub.TenantID(),
		PeriodStart: start,
		PeriodEnd:   end,
	}
	if err := s.usageRepo.Create(ctx, usage); err != nil {
		return nil, fmt.Errorf("failed to create usage period: %w", err)
	}
	s.logger.Infow("usage period opened",
		"tenant_id", sub.TenantID(),
		"period_start", start,
		"period_end", end,
	)
	return usage, nil
}

// Current counts the tenant's present consumption of resource.
func (s *Service) Current(ctx context.Context, sub *billing.TenantSubscription, resource billing.Resource) (int, error) {
	switch resource {
	case billing.ResourceActiveJobs:
		n, err := s.jobRepo.CountActiveByTenant(ctx, sub.TenantID())
		if err != nil {
			return 0, fmt.Errorf("failed to count active jobs: %w", err)
		}
		return int(n), nil
	case billing.ResourceMonthlyResumes:
		usage, err := s.CurrentUsage(ctx, sub)
		if err != nil {
			return 0, err
		}
		return usage.ResumesReviewed, nil
	case billing.ResourceSeats:
		n, err := s.userRepo.CountByTenant(ctx, sub.TenantID())
		if err != nil {
			return 0, fmt.Errorf("failed to count seats: %w", err)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("unknown resource: %s", resource)
	}
}

func (s *Service) CheckLimit(ctx context.Context, tenantID uint, resource billing.Resource) (billing.LimitCheck, error) {
	sub, err := s.Subscription(ctx, tenantID)
	if err != nil {
		return billing.LimitCheck{}, err
	}
	current, err := s.Current(ctx, sub, resource)
	if err != nil {
		return billing.LimitCheck{}, err
	}
	return s.gate.CheckLimit(sub, resource, current), nil
}

func (s *Service) CheckFeature(ctx context.Context, tenantID uint, feature billing.Feature) (billing.FeatureCheck, error) {
	sub, err := s.Subscription(ctx, tenantID)
	if err != nil {
		return billing.FeatureCheck{}, err
	}
	return s.gate.CheckFeature(sub, feature), nil
}

// RecordResume counts one reviewed résumé in the current usage period.
func (s *Service) RecordResume(ctx context.Context, tenantID uint) error {
	sub, err := s.Subscription(ctx, tenantID)
	if err != nil {
		return err
	}
	usage, err := s.CurrentUsage(ctx, sub)
	if err != nil {
		return err
	}
	if err := s.usageRepo.IncrementResumes(ctx, usage.ID); err != nil {
		return fmt.Errorf("failed to record resume usage: %w", err)
	}
	return nil
}
