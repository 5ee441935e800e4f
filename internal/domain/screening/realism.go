package screening

import (
	"context"
	"strings"
)

const realismPrompt = "Does this résumé appear human & realistic? Answer yes or no."

// RealismChecker asks whether a résumé looks like a real person's.
type RealismChecker struct {
	gen TextGenerator
}

func NewRealismChecker(gen TextGenerator) *RealismChecker {
	return &RealismChecker{gen: gen}
}

func (r *RealismChecker) Check(ctx context.Context, resume map[string]interface{}) (bool, error) {
	reply, err := r.gen.Generate(ctx, Prompt{System: realismPrompt, User: marshalResume(resume, false)})
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(reply)), "y"), nil
}
