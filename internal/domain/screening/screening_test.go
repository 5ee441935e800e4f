package screening

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	replies []string
	err     error
	prompts []Prompt
}

func (f *fakeGenerator) Generate(_ context.Context, p Prompt) (string, error) {
	f.prompts = append(f.prompts, p)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", errors.New("unexpected call")
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r, nil
}

var resume = map[string]interface{}{"name": "Ada Lovelace", "skills": []interface{}{"go"}}

func TestResumeStructurer_RetriesOnce(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"not json", "```json\n{\"name\":\"Ada\"}\n```"}}
	out, err := NewResumeStructurer(gen).Structure(context.Background(), "text")

	require.NoError(t, err)
	assert.Equal(t, "Ada", out["name"])
	require.Len(t, gen.prompts, 2)
	assert.True(t, gen.prompts[0].JSON)
	assert.Equal(t, structureRetryPrompt, gen.prompts[1].System)
}

func TestResumeStructurer_FailsAfterRetry(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"nope", "[1,2]"}}
	_, err := NewResumeStructurer(gen).Structure(context.Background(), "text")
	assert.ErrorIs(t, err, ErrInvalidReply)
}

func TestResumeStructurer_PropagatesGeneratorError(t *testing.T) {
	boom := errors.New("timeout")
	_, err := NewResumeStructurer(&fakeGenerator{err: boom}).Structure(context.Background(), "text")
	assert.ErrorIs(t, err, boom)
}

func TestFitScorer(t *testing.T) {
	tests := []struct {
		reply string
		want  int
	}{
		{"4", 4},
		{"Score: 3/5", 3},
		{"I'd say 7, maybe 2", 2},
		{"no idea", 1},
		{"0", 1},
		{"5", 5},
	}
	for _, tt := range tests {
		gen := &fakeGenerator{replies: []string{tt.reply}}
		got, err := NewFitScorer(gen).Score(context.Background(), resume, "Go engineer")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.reply)
	}
}

func TestFitScorer_ErrorPropagates(t *testing.T) {
	_, err := NewFitScorer(&fakeGenerator{err: errors.New("down")}).Score(context.Background(), resume, "jd")
	assert.Error(t, err)
}

func TestRealismChecker(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"Yes, it looks real.", "no"}}
	checker := NewRealismChecker(gen)

	ok, err := checker.Check(context.Background(), resume)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = checker.Check(context.Background(), resume)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuestionGenerator(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{"array", `["a?","b?","c?","d?"]`, []string{"a?", "b?", "c?", "d?"}},
		{"wrapped array", `{"questions":["a?","b?"]}`, []string{"a?", "b?"}},
		{"more than four", `["1","2","3","4","5"]`, []string{"1", "2", "3", "4"}},
		{"line fallback", "1. What did you build?\n\n- How did you test it?\n", []string{"What did you build?", "How did you test it?"}},
		{"fenced", "```json\n[\"x?\"]\n```", []string{"x?"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{replies: []string{tt.reply}}
			got, err := NewQuestionGenerator(gen).Generate(context.Background(), resume, "jd")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswerScorer_ShortAnswerSkipsCall(t *testing.T) {
	gen := &fakeGenerator{}
	scores, err := NewAnswerScorer(gen).Score(context.Background(), resume,
		[]string{"q1"}, []string{"only four words here"})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, scores)
	assert.Empty(t, gen.prompts)
}

func TestAnswerScorer_CapsAndClamps(t *testing.T) {
	twelve := strings.Repeat("word ", 12)
	seven := "one two three four five six seven"

	gen := &fakeGenerator{replies: []string{"7", "5", "garbage"}}
	scores, err := NewAnswerScorer(gen).Score(context.Background(), resume,
		[]string{"q1", "q2", "q3"}, []string{twelve, seven, twelve})

	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 1, 1}, scores)
	assert.Len(t, gen.prompts, 3)
}

func TestAnswerScorer_PadsToFourForFewerQuestions(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"4"}}
	scores, err := NewAnswerScorer(gen).Score(context.Background(), resume,
		[]string{"q1"}, []string{strings.Repeat("detail ", 10), "", "", ""})

	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 1, 1}, scores)
}

func TestScoreCap(t *testing.T) {
	assert.Equal(t, 0, ScoreCap(""))
	assert.Equal(t, 0, ScoreCap("a b c d"))
	assert.Equal(t, 2, ScoreCap("a b c d e"))
	assert.Equal(t, 2, ScoreCap("a b c d e f g h i"))
	assert.Equal(t, 5, ScoreCap("a b c d e f g h i j"))
}
