package models

import (
	"time"

	"gorm.io/datatypes"
)

// TenantSubscriptionModel is the persisted billing state of a tenant. Tenants without a
// row are grandfathered.
type TenantSubscriptionModel struct {
	ID                    uint       `gorm:"primarykey"`
	TenantID              uint       `gorm:"uniqueIndex;not null"`
	PlanTier              string     `gorm:"size:20;not null"`
	BillingCycle          string     `gorm:"size:20;not null;default:monthly"`
	Status                string     `gorm:"size:20;not null;index"`
	CurrentPeriodStart    time.Time  `gorm:"not null"`
	CurrentPeriodEnd      *time.Time `gorm:"index"`
	CanceledAt            *time.Time
	ExtraSeats            int     `gorm:"not null;default:0"`
	GatewayCustomerID     *string `gorm:"size:128;index"`
	GatewaySubscriptionID *string `gorm:"size:128;uniqueIndex"`
	PaymentMethod         datatypes.JSONType[PaymentMethodData]
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// PaymentMethodData is the masked card stored alongside the subscription.
type PaymentMethodData struct {
	Last4    string `json:"last4,omitempty"`
	Brand    string `json:"brand,omitempty"`
	ExpMonth int    `json:"exp_month,omitempty"`
	ExpYear  int    `json:"exp_year,omitempty"`
}

func (TenantSubscriptionModel) TableName() string {
	return "tenant_subscription"
}
