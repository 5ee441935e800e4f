// Package screening turns a résumé and a job description into the scores and
// verification questions stored on a candidate. Every model interaction goes through
// TextGenerator so the backend can be swapped or faked.
package screening

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Prompt is a single completion request.
type Prompt struct {
	System string
	User   string
	// JSON asks the backend for a JSON-only reply.
	JSON bool
}

// TextGenerator issues one completion and returns the reply text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// ErrInvalidReply is returned when a structured reply cannot be decoded.
var ErrInvalidReply = errors.New("model reply is not valid JSON")

// stripCodeFence removes a surrounding markdown code fence from a reply.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func marshalResume(resume map[string]interface{}, indent bool) string {
	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(resume, "", "  ")
	} else {
		b, err = json.Marshal(resume)
	}
	if err != nil {
		return "{}"
	}
	return string(b)
}
