package paymentgateway

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hireloop/hireloop/internal/domain/billing"
)

// PaymentGateway is the narrow surface of the card processor used by billing use cases.
// Declines and unknown gateway objects are reported through Result; the returned error
// is reserved for transport failures.
type PaymentGateway interface {
	CreateCustomer(ctx context.Context, email, name string) (*Result, error)
	// AttachPaymentMethod stores the card as the customer's default payment method.
	AttachPaymentMethod(ctx context.Context, customerID string, card CardDetails) (*Result, error)
	CreateSubscription(ctx context.Context, customerID string, tier billing.Tier, cycle billing.BillingCycle) (*Result, error)
	CancelSubscription(ctx context.Context, subscriptionID string, atPeriodEnd bool) (*Result, error)
	UpdateSubscription(ctx context.Context, subscriptionID string, tier billing.Tier, cycle billing.BillingCycle) (*Result, error)
	// ChargeOnce charges amount (USD) to the customer's default payment method.
	ChargeOnce(ctx context.Context, customerID string, amount decimal.Decimal, description string) (*Result, error)
}

// CardDetails is a raw card as submitted by the account owner.
type CardDetails struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVC      string
}

// Result is the outcome of one gateway call.
type Result struct {
	Success         bool
	ErrorMessage    string
	CustomerID      string
	PaymentMethodID string
	SubscriptionID  string
	PaymentID       string
	Status          string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	Card            *billing.PaymentMethod
}

func failed(message string) *Result {
	return &Result{ErrorMessage: message}
}

// Webhook event types handled by the billing dispatcher.
const (
	EventCheckoutCompleted     = "checkout.session.completed"
	EventSubscriptionCreated   = "customer.subscription.created"
	EventSubscriptionUpdated   = "customer.subscription.updated"
	EventSubscriptionDeleted   = "customer.subscription.deleted"
	EventInvoicePaymentSuccess = "invoice.payment_succeeded"
	EventInvoicePaymentFailed  = "invoice.payment_failed"
	EventPaymentMethodAttached = "payment_method.attached"
	EventCustomerCreated       = "customer.created"
)

var (
	ErrMissingSignature = errors.New("no signature")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidPayload   = errors.New("invalid payload")
)

// WebhookVerifier authenticates a gateway notification and decodes it.
type WebhookVerifier interface {
	// Configured reports whether at least one signing secret is set.
	Configured() bool
	Verify(payload []byte, signature string) (*WebhookEvent, error)
}

// WebhookEvent is a verified gateway notification. Exactly one object pointer is set for
// the known event types; unknown types carry none.
type WebhookEvent struct {
	ID            string
	Type          string
	Checkout      *CheckoutObject
	Subscription  *SubscriptionObject
	Invoice       *InvoiceObject
	PaymentMethod *PaymentMethodObject
	Customer      *CustomerObject
}

type CheckoutObject struct {
	ID             string
	CustomerID     string
	SubscriptionID string
	Email          string
}

type SubscriptionObject struct {
	ID                 string
	CustomerID         string
	Status             string
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	// LookupKey is the price lookup key of the first item, "<tier>_<cycle>".
	LookupKey string
}

type InvoiceObject struct {
	ID              string
	Number          string
	CustomerID      string
	SubscriptionID  string
	PaymentIntentID string
	AmountPaid      decimal.Decimal
	AmountDue       decimal.Decimal
	Currency        string
}

type PaymentMethodObject struct {
	ID         string
	CustomerID string
	Card       *billing.PaymentMethod
}

type CustomerObject struct {
	ID    string
	Email string
}

// ParseLookupKey splits a price lookup key such as "pro_annual" or "starter_monthly".
// ok is false when the key has no cycle part.
func ParseLookupKey(key string) (tier billing.Tier, cycle billing.BillingCycle, ok bool) {
	parts := strings.Split(key, "_")
	if len(parts) < 2 {
		return "", "", false
	}
	cycle = billing.CycleMonthly
	if strings.Contains(parts[1], "annual") || strings.Contains(parts[1], "year") {
		cycle = billing.CycleYearly
	}
	return billing.ParseTier(parts[0]), cycle, true
}

// LookupKey is the inverse of ParseLookupKey.
func LookupKey(tier billing.Tier, cycle billing.BillingCycle) string {
	return string(tier) + "_" + string(cycle)
}
