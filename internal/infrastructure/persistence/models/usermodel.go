package models

import "time"

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	TenantID     uint   `gorm:"index;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	FullName     string `gorm:"size:255"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;default:'recruiter'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}
