package screening

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	structurePrompt      = "Extract this résumé into JSON with the keys name, education, work_history and skills."
	structureRetryPrompt = "Return ONLY valid JSON for this résumé."
)

// ResumeStructurer converts extracted résumé text into a JSON object. A reply that is
// not valid JSON is retried once with a stricter instruction.
type ResumeStructurer struct {
	gen TextGenerator
}

func NewResumeStructurer(gen TextGenerator) *ResumeStructurer {
	return &ResumeStructurer{gen: gen}
}

func (s *ResumeStructurer) Structure(ctx context.Context, text string) (map[string]interface{}, error) {
	reply, err := s.gen.Generate(ctx, Prompt{System: structurePrompt, User: text, JSON: true})
	if err != nil {
		return nil, err
	}
	if resume, ok := decodeObject(reply); ok {
		return resume, nil
	}

	reply, err = s.gen.Generate(ctx, Prompt{System: structureRetryPrompt, User: text, JSON: true})
	if err != nil {
		return nil, err
	}
	resume, ok := decodeObject(reply)
	if !ok {
		return nil, fmt.Errorf("structure resume: %w", ErrInvalidReply)
	}
	return resume, nil
}

func decodeObject(reply string) (map[string]interface{}, bool) {
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &out); err != nil || out == nil {
		return nil, false
	}
	return out, true
}
