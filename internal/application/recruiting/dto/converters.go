package dto

import (
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/domain/scoring"
)

func ToJobDTO(job *recruiting.JobDescription) *JobDTO {
	if job == nil {
		return nil
	}
	return &JobDTO{
		Code:       job.Code,
		Slug:       job.Slug,
		Title:      job.Title,
		Body:       job.Body,
		HTML:       job.HTML,
		Status:     string(job.Status),
		Department: job.Department,
		Team:       job.Team,
		Posted:     job.PostedDate(),
		StartDate:  job.StartDate,
		CreatedAt:  job.CreatedAt,
	}
}

func ToJobDTOList(jobs []*recruiting.JobDescription) []*JobDTO {
	out := make([]*JobDTO, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, ToJobDTO(job))
	}
	return out
}

func ToJobPostingDTO(job *recruiting.JobDescription) *JobPostingDTO {
	return &JobPostingDTO{
		Slug:       job.Slug,
		Code:       job.Code,
		Title:      job.Title,
		HTML:       job.HTML,
		Department: job.Department,
		Team:       job.Team,
	}
}

func ToCandidateDTO(c *recruiting.Candidate) *CandidateDTO {
	if c == nil {
		return nil
	}
	return &CandidateDTO{
		ID:              c.ID,
		JDCode:          c.JDCode,
		Name:            c.Name,
		Resume:          c.Resume,
		Realism:         c.Realism,
		FitScore:        c.FitScore,
		Relevancy:       c.Relevancy,
		Questions:       nonNilStrings(c.Questions),
		Answers:         nonNilStrings(c.Answers),
		AnswerScores:    c.AnswerScores,
		ClaimBucket:     bucketPtr(c.ClaimBucket()),
		RelevancyBucket: bucketPtr(c.RelevancyBucket()),
		Completed:       c.IsCompleted(),
		Diamond:         c.IsDiamond(),
		HasResume:       c.ResumeURL != "",
		CreatedAt:       c.CreatedAt,
	}
}

func ToCandidateDTOList(candidates []*recruiting.Candidate) []*CandidateDTO {
	out := make([]*CandidateDTO, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, ToCandidateDTO(c))
	}
	return out
}

func bucketPtr(b scoring.Bucket) *int {
	if !b.Valid() {
		return nil
	}
	v := int(b)
	return &v
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
