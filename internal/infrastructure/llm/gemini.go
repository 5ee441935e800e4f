// Package llm implements screening.TextGenerator on the Gemini API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/hireloop/hireloop/internal/domain/screening"
	"github.com/hireloop/hireloop/internal/shared/config"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

const defaultModel = "gemini-2.5-flash"

// contentGenerator is the subset of *genai.Models the generator calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Observer receives the outcome ("ok" or "error") and latency of every call.
type Observer func(outcome string, elapsed time.Duration)

type Generator struct {
	models      contentGenerator
	modelName   string
	timeout     time.Duration
	temperature float32
	observe     Observer
	logger      logger.Interface
}

var _ screening.TextGenerator = (*Generator)(nil)

// NewGenerator creates a Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, cfg config.LLMConfig, log logger.Interface) (*Generator, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newGenerator(client.Models, cfg, log), nil
}

func newGenerator(models contentGenerator, cfg config.LLMConfig, log logger.Interface) *Generator {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	return &Generator{
		models:      models,
		modelName:   model,
		timeout:     cfg.Timeout(),
		temperature: cfg.Temperature,
		logger:      log.Named("llm.gemini"),
	}
}

// WithObserver installs a per-call hook, used for metrics.
func (g *Generator) WithObserver(o Observer) *Generator {
	g.observe = o
	return g
}

// Generate sends one prompt and returns the concatenated text parts of the reply.
func (g *Generator) Generate(ctx context.Context, prompt screening.Prompt) (string, error) {
	user := strings.TrimSpace(prompt.User)
	if user == "" {
		return "", errors.New("prompt must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	}
	if s := strings.TrimSpace(prompt.System); s != "" {
		cfg.SystemInstruction = genai.NewContentFromText(s, genai.RoleUser)
	}
	if prompt.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(user), cfg)
	if err != nil {
		g.record("error", start)
		g.logger.Warnw("gemini request failed", "model", g.modelName, "error", err)
		return "", fmt.Errorf("generate content: %w", err)
	}

	output := joinText(resp)
	if output == "" {
		g.record("error", start)
		return "", errors.New("gemini api returned empty response")
	}

	g.record("ok", start)
	g.logger.Debugw("gemini request completed", "model", g.modelName, "elapsed", time.Since(start))
	return output, nil
}

func (g *Generator) Model() string {
	return g.modelName
}

func (g *Generator) record(outcome string, start time.Time) {
	if g.observe != nil {
		g.observe(outcome, time.Since(start))
	}
}

func joinText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}
