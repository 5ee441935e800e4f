package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentHistoryModel struct {
	ID               uint            `gorm:"primaryKey"`
	TenantID         uint            `gorm:"index;not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency         string          `gorm:"size:10;not null;default:'USD'"`
	Description      string          `gorm:"size:255"`
	Status           string          `gorm:"size:20;not null;index"`
	PlanTier         string          `gorm:"size:20"`
	BillingCycle     string          `gorm:"size:20"`
	ExtraSeats       int             `gorm:"not null;default:0"`
	GatewayPaymentID *string         `gorm:"size:128;index"`
	GatewayInvoiceID *string         `gorm:"size:128;uniqueIndex"`
	CardLast4        string          `gorm:"size:4"`
	CardBrand        string          `gorm:"size:32"`
	CreatedAt        time.Time       `gorm:"index"`
}

func (PaymentHistoryModel) TableName() string {
	return "payment_history"
}
