package models

import "time"

type TenantUsageModel struct {
	ID              uint      `gorm:"primarykey"`
	TenantID        uint      `gorm:"not null;uniqueIndex:idx_tenant_period,priority:1"`
	PeriodStart     time.Time `gorm:"not null;uniqueIndex:idx_tenant_period,priority:2"`
	PeriodEnd       time.Time `gorm:"not null"`
	ResumesReviewed int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (TenantUsageModel) TableName() string {
	return "tenant_usage"
}
