// Package dto holds the JSON shapes of the billing endpoints.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hireloop/hireloop/internal/domain/billing"
)

// UsageSummaryDTO is the account page summary. Limits of a grandfathered tenant are
// reported as the unlimited sentinel.
type UsageSummaryDTO struct {
	PlanTier         billing.Tier           `json:"plan_tier"`
	PlanDisplay      string                 `json:"plan_display"`
	BillingCycle     billing.BillingCycle   `json:"billing_cycle"`
	Status           billing.Status         `json:"status"`
	IsGrandfathered  bool                   `json:"is_grandfathered"`
	JobsLimit        int                    `json:"jobs_limit"`
	ResumesLimit     int                    `json:"resumes_limit"`
	SeatsLimit       int                    `json:"seats_limit"`
	JobsUsed         int                    `json:"jobs_used"`
	ResumesUsed      int                    `json:"resumes_used"`
	SeatsUsed        int                    `json:"seats_used"`
	HasClaimValidity bool                   `json:"has_claim_validity"`
	HasRedFlag       bool                   `json:"has_red_flag"`
	HasAnalytics     bool                   `json:"has_analytics"`
	PeriodEnd        *time.Time             `json:"period_end"`
	ExtraSeats       int                    `json:"extra_seats"`
	PaymentMethod    *billing.PaymentMethod `json:"payment_method,omitempty"`
}

type LimitStatusDTO struct {
	Resource     billing.Resource      `json:"resource"`
	LimitReached bool                  `json:"limit_reached"`
	Current      int                   `json:"current"`
	Limit        int                   `json:"limit"`
	Remaining    int                   `json:"remaining"`
	Unlimited    bool                  `json:"unlimited"`
	Notification *billing.Notification `json:"notification"`
}

type FeatureStatusDTO struct {
	Feature      billing.Feature       `json:"feature"`
	HasAccess    bool                  `json:"has_access"`
	Notification *billing.Notification `json:"notification"`
}

type PlanCatalogDTO struct {
	Plans                 []*billing.Plan `json:"plans"`
	ExtraSeatPriceMonthly decimal.Decimal `json:"extra_seat_price_monthly"`
	YearlyDiscountPercent int             `json:"yearly_discount_percent"`
	EnterpriseContact     string          `json:"enterprise_contact"`
}

type PaymentDTO struct {
	ID          uint                  `json:"id"`
	Amount      decimal.Decimal       `json:"amount"`
	Currency    string                `json:"currency"`
	Description string                `json:"description"`
	Status      billing.PaymentStatus `json:"status"`
	PlanTier    billing.Tier          `json:"plan_tier,omitempty"`
	ExtraSeats  int                   `json:"extra_seats,omitempty"`
	CardLast4   string                `json:"card_last4,omitempty"`
	CardBrand   string                `json:"card_brand,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}
