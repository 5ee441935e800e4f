package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentPending   PaymentStatus = "pending"
	PaymentRefunded  PaymentStatus = "refunded"
)

const CurrencyUSD = "USD"

// PaymentHistory is an audit row for a charge or credit. Rows are only appended, except
// that a repeated invoice id updates the status and amount of the existing row.
type PaymentHistory struct {
	ID               uint
	TenantID         uint
	Amount           decimal.Decimal
	Currency         string
	Description      string
	Status           PaymentStatus
	Tier             Tier
	Cycle            BillingCycle
	ExtraSeats       int
	GatewayPaymentID string
	GatewayInvoiceID string
	CardLast4        string
	CardBrand        string
	CreatedAt        time.Time
}

// NewPayment builds a USD payment row carrying the subscription's card metadata.
func NewPayment(sub *TenantSubscription, amount decimal.Decimal, status PaymentStatus, description string) *PaymentHistory {
	p := &PaymentHistory{
		TenantID:    sub.TenantID(),
		Amount:      amount,
		Currency:    CurrencyUSD,
		Description: description,
		Status:      status,
		Tier:        sub.Tier(),
		Cycle:       sub.Cycle(),
	}
	if pm := sub.PaymentMethod(); pm != nil {
		p.CardLast4 = pm.Last4
		p.CardBrand = pm.Brand
	}
	return p
}
