package billing

import (
	"time"

	"github.com/hireloop/hireloop/internal/shared/biztime"
)

// TenantUsage counts metered usage within one billing period.
type TenantUsage struct {
	ID              uint
	TenantID        uint
	PeriodStart     time.Time
	PeriodEnd       time.Time
	ResumesReviewed int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Covers reports whether t falls in [PeriodStart, PeriodEnd).
func (u *TenantUsage) Covers(t time.Time) bool {
	return !t.Before(u.PeriodStart) && t.Before(u.PeriodEnd)
}

// UsagePeriod picks the bounds of the usage record to open at now. The subscription's
// own period is used while it covers now; otherwise periods are rolled forward from it.
func UsagePeriod(sub *TenantSubscription, now time.Time) (time.Time, time.Time) {
	start := sub.CurrentPeriodStart()
	if start.IsZero() || start.After(now) {
		start = now
	}
	end := sub.PeriodEnd()
	if !end.After(start) {
		end = addCycle(start, sub.Cycle())
	}
	for !now.Before(end) {
		start = end
		end = addCycle(start, sub.Cycle())
	}
	return start, end
}

func addCycle(t time.Time, cycle BillingCycle) time.Time {
	return biztime.AddMonths(t, cycle.Months())
}
