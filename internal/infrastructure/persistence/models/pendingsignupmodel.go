package models

import "time"

type PendingSignupModel struct {
	ID           uint      `gorm:"primarykey"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PlanTier     string    `gorm:"size:20;not null"`
	BillingCycle string    `gorm:"size:20;not null"`
	CompanyName  string    `gorm:"size:255;not null"`
	FullName     string    `gorm:"size:255"`
	PasswordHash string    `gorm:"size:255;not null"`
	ExpiresAt    time.Time `gorm:"not null;index"`
	Processed    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PendingSignupModel) TableName() string {
	return "pending_signups"
}
