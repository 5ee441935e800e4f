package dto

import "time"

type JobDTO struct {
	Code       string     `json:"code"`
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	HTML       string     `json:"html"`
	Status     string     `json:"status"`
	Department string     `json:"department"`
	Team       string     `json:"team"`
	Posted     *string    `json:"posted"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// JobPostingDTO is the public view of a job shown to applicants.
type JobPostingDTO struct {
	Slug       string `json:"slug"`
	Code       string `json:"code"`
	Title      string `json:"title"`
	HTML       string `json:"html"`
	Department string `json:"department"`
	Team       string `json:"team"`
}

type CandidateDTO struct {
	ID              string                 `json:"id"`
	JDCode          string                 `json:"jd_code"`
	Name            string                 `json:"name"`
	Resume          map[string]interface{} `json:"resume"`
	Realism         bool                   `json:"realism"`
	FitScore        *int                   `json:"fit_score"`
	Relevancy       *float64               `json:"relevancy"`
	Questions       []string               `json:"questions"`
	Answers         []string               `json:"answers"`
	AnswerScores    []*float64             `json:"answer_scores"`
	ClaimBucket     *int                   `json:"claim_validity_bucket"`
	RelevancyBucket *int                   `json:"relevancy_bucket"`
	Completed       bool                   `json:"completed"`
	Diamond         bool                   `json:"diamond"`
	HasResume       bool                   `json:"has_resume"`
	CreatedAt       time.Time              `json:"created_at"`
}

type ApplicationDTO struct {
	CandidateID string   `json:"candidate_id"`
	Questions   []string `json:"questions"`
}

type AnswerScoresDTO struct {
	CandidateID string `json:"candidate_id"`
	Scores      []int  `json:"scores"`
	Completed   bool   `json:"completed"`
}
