package models

import "time"

type TenantModel struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex;size:64;not null"`
	DisplayName string `gorm:"size:255;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TenantModel) TableName() string {
	return "tenant"
}
