package screening

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	answerSystemPrompt = "Grade answer."
	resumeSnippetLimit = 1500

	minWordsForReview = 5
	minWordsForFull   = 10
	lowEffortCap      = 2
	maxAnswerScore    = 5
)

var integerPattern = regexp.MustCompile(`-?\d+`)

// AnswerScorer grades answers 1-5. Short answers are capped or scored without a call.
type AnswerScorer struct {
	gen TextGenerator
}

func NewAnswerScorer(gen TextGenerator) *AnswerScorer {
	return &AnswerScorer{gen: gen}
}

// ScoreCap is the highest score an answer with the given text can receive. Zero means
// the answer is scored 1 without consulting the model.
func ScoreCap(answer string) int {
	words := len(strings.Fields(answer))
	switch {
	case words < minWordsForReview:
		return 0
	case words < minWordsForFull:
		return lowEffortCap
	default:
		return maxAnswerScore
	}
}

// Score grades each question/answer pair and pads the result with 1s to four entries,
// independent of how many questions were asked.
func (s *AnswerScorer) Score(ctx context.Context, resume map[string]interface{}, questions, answers []string) ([]int, error) {
	snippet := marshalResume(resume, false)
	if len(snippet) > resumeSnippetLimit {
		snippet = snippet[:resumeSnippetLimit]
	}

	n := len(questions)
	if len(answers) < n {
		n = len(answers)
	}

	scores := make([]int, 0, QuestionCount)
	for i := 0; i < n; i++ {
		limit := ScoreCap(answers[i])
		if limit == 0 {
			scores = append(scores, 1)
			continue
		}

		user := fmt.Sprintf(
			"Question: %s\nAnswer: %s\nRésumé snippet:\n%s\n\nScore this answer 1-5 (5 perfect, 1 wrong). Return ONLY the integer.",
			questions[i], answers[i], snippet,
		)
		reply, err := s.gen.Generate(ctx, Prompt{System: answerSystemPrompt, User: user})
		if err != nil {
			return nil, err
		}
		scores = append(scores, clampScore(parseScore(reply), limit))
	}

	for len(scores) < QuestionCount {
		scores = append(scores, 1)
	}
	return scores, nil
}

func parseScore(reply string) int {
	m := integerPattern.FindString(reply)
	if m == "" {
		return 1
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 1
	}
	return v
}

func clampScore(v, limit int) int {
	if v < 1 {
		return 1
	}
	if v > limit {
		return limit
	}
	return v
}
