package screening

import (
	"context"
	"fmt"
)

const fitSystemPrompt = "Score résumé vs JD."

// FitScorer rates a structured résumé against a job description on a 1-5 scale.
type FitScorer struct {
	gen TextGenerator
}

func NewFitScorer(gen TextGenerator) *FitScorer {
	return &FitScorer{gen: gen}
}

// Score returns the first digit between 1 and 5 in the reply, or 1 when there is none.
// Generator errors are returned unchanged.
func (f *FitScorer) Score(ctx context.Context, resume map[string]interface{}, jobText string) (int, error) {
	user := fmt.Sprintf(
		"Résumé JSON:\n%s\n\nJob description:\n%s\n\nScore the résumé's relevance on a 1-5 scale. Return ONLY the integer.",
		marshalResume(resume, true), jobText,
	)
	reply, err := f.gen.Generate(ctx, Prompt{System: fitSystemPrompt, User: user})
	if err != nil {
		return 0, err
	}
	return firstScoreDigit(reply), nil
}

func firstScoreDigit(reply string) int {
	for _, r := range reply {
		if r >= '1' && r <= '5' {
			return int(r - '0')
		}
	}
	return 1
}
