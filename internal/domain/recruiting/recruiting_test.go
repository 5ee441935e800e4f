package recruiting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseTenantSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme", "acme"},
		{"Acme Corp.", "acme-corp"},
		{"  Big Data Inc.  ", "big-data-inc"},
		{"A Very Long Company Name Indeed", "a-very-long-company"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseTenantSlug(tt.in), tt.in)
	}
}

func TestJobDescription_PostedDate(t *testing.T) {
	job := &JobDescription{}
	assert.Nil(t, job.PostedDate())

	d := time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC)
	job.StartDate = &d
	require.NotNil(t, job.PostedDate())
	assert.Equal(t, "2025-03-09", *job.PostedDate())
}

func TestJobDescription_Validate(t *testing.T) {
	job := &JobDescription{Code: "ENG-1", Title: "Engineer", Status: JobStatusOpen}
	assert.NoError(t, job.Validate())

	job.Status = "archived"
	assert.Error(t, job.Validate())

	job.Status = JobStatusDraft
	job.Title = " "
	assert.Error(t, job.Validate())
}

func TestCandidate_RecordAnswersPadsToFour(t *testing.T) {
	c := &Candidate{Questions: []string{"q1", "q2"}}
	c.RecordAnswers([]string{"first answer", "second"}, []int{4, 1})

	require.Len(t, c.Answers, AnswerSlots)
	require.Len(t, c.AnswerScores, AnswerSlots)
	assert.Equal(t, []string{"first answer", "second", "", ""}, c.Answers)
	assert.Equal(t, 4.0, *c.AnswerScores[0])
	assert.Equal(t, 1.0, *c.AnswerScores[3])
	assert.True(t, c.IsCompleted())
	assert.True(t, c.HasAnswered())
}

func TestCandidate_Diamond(t *testing.T) {
	rel := 4.4
	five := 5.0
	four := 4.0
	c := &Candidate{Relevancy: &rel, AnswerScores: []*float64{&five, &four, nil}}
	assert.True(t, c.IsDiamond())

	fit := 3
	c = &Candidate{FitScore: &fit, AnswerScores: []*float64{&five}}
	assert.False(t, c.IsDiamond())
}

func TestNewCandidateID(t *testing.T) {
	id := NewCandidateID()
	assert.Len(t, id, 8)
	assert.NotEqual(t, id, NewCandidateID())
}
