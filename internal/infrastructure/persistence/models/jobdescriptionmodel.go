package models

import "time"

type JobDescriptionModel struct {
	ID         uint   `gorm:"primaryKey"`
	TenantID   uint   `gorm:"index;not null"`
	Code       string `gorm:"uniqueIndex;size:64;not null"`
	Slug       string `gorm:"uniqueIndex;size:128;not null"`
	Title      string `gorm:"size:255;not null"`
	Body       string `gorm:"type:text"`
	HTML       string `gorm:"column:html;type:text"`
	Status     string `gorm:"size:20;not null;index"`
	Department string `gorm:"size:128"`
	Team       string `gorm:"size:128"`
	StartDate  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (JobDescriptionModel) TableName() string {
	return "job_description"
}
