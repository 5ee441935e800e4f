package billing

import "strings"

type Tier string

const (
	TierFree    Tier = "free"
	TierStarter Tier = "starter"
	TierPro     Tier = "pro"
	TierUltra   Tier = "ultra"
)

// tierOrder ranks tiers for upgrade comparisons.
var tierOrder = []Tier{TierFree, TierStarter, TierPro, TierUltra}

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	return t.rank() >= 0
}

func (t Tier) rank() int {
	for i, tier := range tierOrder {
		if tier == t {
			return i
		}
	}
	return -1
}

// IsHigherThan reports whether t ranks above other.
func (t Tier) IsHigherThan(other Tier) bool {
	return t.rank() > other.rank()
}

// ParseTier normalizes s; unknown values yield an invalid tier.
func ParseTier(s string) Tier {
	return Tier(strings.ToLower(strings.TrimSpace(s)))
}

// UpgradeOptions lists the tiers above t.
func UpgradeOptions(t Tier) []Tier {
	r := t.rank()
	if r < 0 {
		r = 0
	}
	return append([]Tier(nil), tierOrder[r+1:]...)
}

type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

func (c BillingCycle) IsValid() bool {
	return c == CycleMonthly || c == CycleYearly
}

// Months is the length of one billing period.
func (c BillingCycle) Months() int {
	if c == CycleYearly {
		return 12
	}
	return 1
}

type Status string

const (
	StatusActive        Status = "active"
	StatusCanceled      Status = "canceled"
	StatusPastDue       Status = "past_due"
	StatusTrialing      Status = "trialing"
	StatusIncomplete    Status = "incomplete"
	StatusGrandfathered Status = "grandfathered"
)

var validStatuses = map[Status]bool{
	StatusActive:        true,
	StatusCanceled:      true,
	StatusPastDue:       true,
	StatusTrialing:      true,
	StatusIncomplete:    true,
	StatusGrandfathered: true,
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// StatusFromGateway maps a payment gateway subscription status onto ours.
func StatusFromGateway(s string) Status {
	switch s {
	case "unpaid":
		return StatusPastDue
	case "incomplete_expired":
		return StatusCanceled
	}
	if st := Status(s); st.IsValid() && st != StatusGrandfathered {
		return st
	}
	return StatusActive
}

// Resource is a metered quantity limited per tier.
type Resource string

const (
	ResourceActiveJobs     Resource = "active_jobs"
	ResourceMonthlyResumes Resource = "monthly_resumes"
	ResourceSeats          Resource = "seats"
)

func (r Resource) IsValid() bool {
	return r == ResourceActiveJobs || r == ResourceMonthlyResumes || r == ResourceSeats
}

type Feature string

const (
	FeatureJobRelevancyScore   Feature = "job_relevancy_score"
	FeatureJobBoard            Feature = "job_board"
	FeatureClaimValidityScore  Feature = "claim_validity_score"
	FeatureRedFlagDetection    Feature = "red_flag_detection"
	FeatureFullAnalyticsEngine Feature = "full_analytics_engine"
	FeatureDedicatedSupport    Feature = "dedicated_support"
)

// UnlimitedSentinel is reported as the limit for grandfathered tenants.
const UnlimitedSentinel = 999
