package mappers

import (
	"github.com/hireloop/hireloop/internal/domain/recruiting"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/models"
	"github.com/hireloop/hireloop/internal/shared/authorization"
)

func TenantToModel(t *recruiting.Tenant) *models.TenantModel {
	return &models.TenantModel{
		ID:          t.ID,
		Slug:        t.Slug,
		DisplayName: t.DisplayName,
		CreatedAt:   t.CreatedAt,
	}
}

func TenantToDomain(m *models.TenantModel) *recruiting.Tenant {
	return &recruiting.Tenant{
		ID:          m.ID,
		Slug:        m.Slug,
		DisplayName: m.DisplayName,
		CreatedAt:   m.CreatedAt,
	}
}

func UserToModel(u *recruiting.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID,
		TenantID:     u.TenantID,
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		CreatedAt:    u.CreatedAt,
	}
}

func UserToDomain(m *models.UserModel) *recruiting.User {
	return &recruiting.User{
		ID:           m.ID,
		TenantID:     m.TenantID,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		Role:         authorization.ParseUserRole(m.Role),
		CreatedAt:    m.CreatedAt,
	}
}

func JobToModel(j *recruiting.JobDescription) *models.JobDescriptionModel {
	return &models.JobDescriptionModel{
		ID:         j.ID,
		TenantID:   j.TenantID,
		Code:       j.Code,
		Slug:       j.Slug,
		Title:      j.Title,
		Body:       j.Body,
		HTML:       j.HTML,
		Status:     string(j.Status),
		Department: j.Department,
		Team:       j.Team,
		StartDate:  j.StartDate,
		CreatedAt:  j.CreatedAt,
	}
}

func JobToDomain(m *models.JobDescriptionModel) *recruiting.JobDescription {
	return &recruiting.JobDescription{
		ID:         m.ID,
		TenantID:   m.TenantID,
		Code:       m.Code,
		Slug:       m.Slug,
		Title:      m.Title,
		Body:       m.Body,
		HTML:       m.HTML,
		Status:     recruiting.JobStatus(m.Status),
		Department: m.Department,
		Team:       m.Team,
		StartDate:  m.StartDate,
		CreatedAt:  m.CreatedAt,
	}
}

func CandidateToModel(c *recruiting.Candidate) *models.CandidateModel {
	return &models.CandidateModel{
		ID:           c.ID,
		TenantID:     c.TenantID,
		JDCode:       c.JDCode,
		Name:         c.Name,
		ResumeURL:    c.ResumeURL,
		ResumeJSON:   c.Resume,
		Realism:      c.Realism,
		FitScore:     c.FitScore,
		Relevancy:    c.Relevancy,
		Questions:    c.Questions,
		Answers:      c.Answers,
		AnswerScores: c.AnswerScores,
		CreatedAt:    c.CreatedAt,
	}
}

func CandidateToDomain(m *models.CandidateModel) *recruiting.Candidate {
	return &recruiting.Candidate{
		ID:           m.ID,
		TenantID:     m.TenantID,
		JDCode:       m.JDCode,
		Name:         m.Name,
		ResumeURL:    m.ResumeURL,
		Resume:       m.ResumeJSON,
		Realism:      m.Realism,
		FitScore:     m.FitScore,
		Relevancy:    m.Relevancy,
		Questions:    m.Questions,
		Answers:      m.Answers,
		AnswerScores: m.AnswerScores,
		CreatedAt:    m.CreatedAt,
	}
}

func CandidatesToDomain(ms []models.CandidateModel) []*recruiting.Candidate {
	out := make([]*recruiting.Candidate, len(ms))
	for i := range ms {
		out[i] = CandidateToDomain(&ms[i])
	}
	return out
}
