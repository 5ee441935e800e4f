package models

import (
	"time"

	"gorm.io/datatypes"
)

// CandidateModel references its job by code only; deleting a job keeps its candidates.
type CandidateModel struct {
	ID           string                        `gorm:"primaryKey;size:16"`
	TenantID     uint                          `gorm:"index;not null"`
	JDCode       string                        `gorm:"column:jd_code;index;size:64;not null"`
	Name         string                        `gorm:"size:255;not null"`
	ResumeURL    string                        `gorm:"size:512"`
	ResumeJSON   datatypes.JSONMap             `gorm:"column:resume_json"`
	Realism      bool                          `gorm:"not null;default:false"`
	FitScore     *int                          `gorm:"column:fit_score"`
	Relevancy    *float64                      `gorm:"column:relevancy"`
	Questions    datatypes.JSONSlice[string]   `gorm:"column:questions"`
	Answers      datatypes.JSONSlice[string]   `gorm:"column:answers"`
	AnswerScores datatypes.JSONSlice[*float64] `gorm:"column:answer_scores"`
	CreatedAt    time.Time                     `gorm:"index"`
	UpdatedAt    time.Time
}

func (CandidateModel) TableName() string {
	return "candidates"
}
