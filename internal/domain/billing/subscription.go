package billing

import (
	"fmt"
	"time"

	"github.com/hireloop/hireloop/internal/shared/biztime"
)

// PaymentMethod is the masked card on file.
type PaymentMethod struct {
	Last4    string `json:"last4"`
	Brand    string `json:"brand"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
}

// TenantSubscription is the plan a tenant pays for. A tenant without a stored
// subscription is treated as grandfathered (see Grandfathered).
type TenantSubscription struct {
	id                    uint
	tenantID              uint
	tier                  Tier
	cycle                 BillingCycle
	status                Status
	currentPeriodStart    time.Time
	currentPeriodEnd      *time.Time
	canceledAt            *time.Time
	extraSeats            int
	gatewayCustomerID     string
	gatewaySubscriptionID string
	paymentMethod         *PaymentMethod
	virtual               bool
	createdAt             time.Time
	updatedAt             time.Time
}

// NewTenantSubscription starts an active subscription whose first period begins at start.
func NewTenantSubscription(tenantID uint, tier Tier, cycle BillingCycle, start time.Time) (*TenantSubscription, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid plan tier: %s", tier)
	}
	if !cycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", cycle)
	}

	end := biztime.AddMonths(start, cycle.Months())
	now := biztime.NowUTC()
	return &TenantSubscription{
		tenantID:           tenantID,
		tier:               tier,
		cycle:              cycle,
		status:             StatusActive,
		currentPeriodStart: start,
		currentPeriodEnd:   &end,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructTenantSubscription rebuilds a subscription from persistence.
func ReconstructTenantSubscription(
	id, tenantID uint,
	tier Tier,
	cycle BillingCycle,
	status Status,
	currentPeriodStart time.Time,
	currentPeriodEnd, canceledAt *time.Time,
	extraSeats int,
	gatewayCustomerID, gatewaySubscriptionID string,
	paymentMethod *PaymentMethod,
	createdAt, updatedAt time.Time,
) (*TenantSubscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if !cycle.IsValid() {
		cycle = CycleMonthly
	}
	if !tier.IsValid() {
		tier = TierFree
	}

	return &TenantSubscription{
		id:                    id,
		tenantID:              tenantID,
		tier:                  tier,
		cycle:                 cycle,
		status:                status,
		currentPeriodStart:    currentPeriodStart,
		currentPeriodEnd:      currentPeriodEnd,
		canceledAt:            canceledAt,
		extraSeats:            extraSeats,
		gatewayCustomerID:     gatewayCustomerID,
		gatewaySubscriptionID: gatewaySubscriptionID,
		paymentMethod:         paymentMethod,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}, nil
}

// Grandfathered is the virtual, never persisted subscription of a tenant that
// predates billing.
func Grandfathered(tenantID uint, since time.Time) *TenantSubscription {
	return &TenantSubscription{
		tenantID:           tenantID,
		tier:               TierUltra,
		cycle:              CycleYearly,
		status:             StatusGrandfathered,
		currentPeriodStart: since,
		virtual:            true,
		createdAt:          since,
		updatedAt:          since,
	}
}

func (s *TenantSubscription) ID() uint                      { return s.id }
func (s *TenantSubscription) TenantID() uint                { return s.tenantID }
func (s *TenantSubscription) Tier() Tier                    { return s.tier }
func (s *TenantSubscription) Cycle() BillingCycle           { return s.cycle }
func (s *TenantSubscription) Status() Status                { return s.status }
func (s *TenantSubscription) CurrentPeriodStart() time.Time { return s.currentPeriodStart }
func (s *TenantSubscription) CurrentPeriodEnd() *time.Time  { return s.currentPeriodEnd }
func (s *TenantSubscription) CanceledAt() *time.Time        { return s.canceledAt }
func (s *TenantSubscription) ExtraSeats() int               { return s.extraSeats }
func (s *TenantSubscription) GatewayCustomerID() string     { return s.gatewayCustomerID }
func (s *TenantSubscription) GatewaySubscriptionID() string { return s.gatewaySubscriptionID }
func (s *TenantSubscription) PaymentMethod() *PaymentMethod { return s.paymentMethod }
func (s *TenantSubscription) CreatedAt() time.Time          { return s.createdAt }
func (s *TenantSubscription) UpdatedAt() time.Time          { return s.updatedAt }

// IsVirtual reports whether the subscription only exists in memory.
func (s *TenantSubscription) IsVirtual() bool { return s.virtual }

func (s *TenantSubscription) IsGrandfathered() bool {
	return s.status == StatusGrandfathered
}

// IsActive reports whether the subscription is in good standing.
func (s *TenantSubscription) IsActive() bool {
	return s.status == StatusActive || s.status == StatusTrialing || s.status == StatusGrandfathered
}

// PeriodEnd is the stored period end, or one cycle after the period start.
func (s *TenantSubscription) PeriodEnd() time.Time {
	if s.currentPeriodEnd != nil {
		return *s.currentPeriodEnd
	}
	return biztime.AddMonths(s.currentPeriodStart, s.cycle.Months())
}

// TotalSeats is the included seat count plus purchased extras.
func (s *TenantSubscription) TotalSeats(catalog *Catalog) int {
	return catalog.Limit(s.tier, ResourceSeats) + s.extraSeats
}

func (s *TenantSubscription) touch() {
	s.updatedAt = biztime.NowUTC()
}

func (s *TenantSubscription) ChangePlan(tier Tier, cycle BillingCycle) error {
	if s.IsGrandfathered() {
		return ErrGrandfatheredPlanChange
	}
	if !tier.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidTier, tier)
	}
	if !cycle.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidCycle, cycle)
	}
	s.tier = tier
	s.cycle = cycle
	s.touch()
	return nil
}

func (s *TenantSubscription) AddSeats(n int) error {
	if s.IsGrandfathered() {
		return ErrGrandfatheredSeats
	}
	if n < MinSeatPurchase || n > MaxSeatPurchase {
		return ErrInvalidSeatCount
	}
	s.extraSeats += n
	s.touch()
	return nil
}

func (s *TenantSubscription) Cancel(at time.Time) error {
	switch {
	case s.IsGrandfathered():
		return ErrGrandfatheredCancel
	case s.status == StatusCanceled:
		return ErrAlreadyCanceled
	}
	s.status = StatusCanceled
	s.canceledAt = &at
	s.touch()
	return nil
}

// SetStatus applies a status reported by the payment gateway.
func (s *TenantSubscription) SetStatus(status Status) {
	if status == StatusCanceled && s.canceledAt == nil {
		now := biztime.NowUTC()
		s.canceledAt = &now
	}
	s.status = status
	s.touch()
}

// SetPeriod records the period bounds reported by the payment gateway.
func (s *TenantSubscription) SetPeriod(start, end time.Time) {
	s.currentPeriodStart = start
	s.currentPeriodEnd = &end
	s.touch()
}

func (s *TenantSubscription) SetGatewayIDs(customerID, subscriptionID string) {
	if customerID != "" {
		s.gatewayCustomerID = customerID
	}
	if subscriptionID != "" {
		s.gatewaySubscriptionID = subscriptionID
	}
	s.touch()
}

func (s *TenantSubscription) SetPaymentMethod(pm PaymentMethod) {
	s.paymentMethod = &pm
	s.touch()
}

func (s *TenantSubscription) SetID(id uint) {
	s.id = id
}
