package screening

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// QuestionCount is the number of verification questions requested per candidate.
const QuestionCount = 4

const questionPrompt = "Write exactly FOUR probing questions to verify the candidate's " +
	"skills/experience for this job. Return a JSON array of strings."

// QuestionGenerator produces verification questions. Fewer than four questions are
// kept as returned; extra questions are dropped.
type QuestionGenerator struct {
	gen TextGenerator
}

func NewQuestionGenerator(gen TextGenerator) *QuestionGenerator {
	return &QuestionGenerator{gen: gen}
}

func (q *QuestionGenerator) Generate(ctx context.Context, resume map[string]interface{}, jobText string) ([]string, error) {
	user := fmt.Sprintf("Résumé:\n%s\n\nJob:\n%s", marshalResume(resume, false), jobText)
	reply, err := q.gen.Generate(ctx, Prompt{System: questionPrompt, User: user, JSON: true})
	if err != nil {
		return nil, err
	}

	questions, ok := decodeQuestions(reply)
	if !ok {
		questions = questionLines(reply)
	}
	if len(questions) > QuestionCount {
		questions = questions[:QuestionCount]
	}
	return questions, nil
}

// decodeQuestions accepts a JSON array of strings or an object wrapping one.
func decodeQuestions(reply string) ([]string, bool) {
	raw := []byte(stripCodeFence(reply))

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return nonBlank(list), true
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, false
	}
	for _, v := range wrapped {
		if err := json.Unmarshal(v, &list); err == nil {
			return nonBlank(list), true
		}
	}
	return nil, false
}

// questionLines treats each non-blank line as a question, dropping list markers.
func questionLines(reply string) []string {
	var out []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
