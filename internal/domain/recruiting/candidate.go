package recruiting

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/hireloop/internal/domain/scoring"
)

// AnswerSlots is the fixed length of stored answer and answer-score lists.
const AnswerSlots = 4

// Candidate is one application to a job, linked through JDCode.
type Candidate struct {
	ID           string
	TenantID     uint
	JDCode       string
	Name         string
	ResumeURL    string
	Resume       map[string]interface{}
	Realism      bool
	FitScore     *int
	Relevancy    *float64
	Questions    []string
	Answers      []string
	AnswerScores []*float64
	CreatedAt    time.Time
}

// NewCandidateID returns an 8-character id taken from a random uuid.
func NewCandidateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (c *Candidate) RelevancyScore() scoring.Score {
	return scoring.RelevancyScore(c.Relevancy, c.FitScore)
}

func (c *Candidate) ClaimBucket() scoring.Bucket {
	return scoring.ClaimValidityBucket(c.AnswerScores)
}

func (c *Candidate) RelevancyBucket() scoring.Bucket {
	return scoring.RelevancyBucket(c.RelevancyScore())
}

func (c *Candidate) IsCompleted() bool {
	return scoring.IsCompleted(c.Questions, c.Answers)
}

func (c *Candidate) IsDiamond() bool {
	return scoring.IsDiamond(c.ClaimBucket(), c.RelevancyBucket())
}

// HasAnswered reports whether answers were already recorded.
func (c *Candidate) HasAnswered() bool {
	for _, a := range c.Answers {
		if strings.TrimSpace(a) != "" {
			return true
		}
	}
	return false
}

// RecordAnswers stores answers and scores padded to AnswerSlots so both lists keep
// equal lengths.
func (c *Candidate) RecordAnswers(answers []string, scores []int) {
	n := AnswerSlots
	if len(answers) > n {
		n = len(answers)
	}
	if len(scores) > n {
		n = len(scores)
	}

	c.Answers = make([]string, n)
	copy(c.Answers, answers)

	c.AnswerScores = make([]*float64, n)
	for i := range c.AnswerScores {
		v := 1.0
		if i < len(scores) {
			v = float64(scores[i])
		}
		c.AnswerScores[i] = &v
	}
}
