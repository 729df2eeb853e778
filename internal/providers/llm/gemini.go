package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
	"google.golang.org/genai"
)

// Gemini completes through the Gemini API SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Complete(ctx context.Context, messages []core.Message, sampling core.Sampling) ([]core.Candidate, error) {
	contents, system := toGeminiContents(messages)

	n := sampling.Candidates
	if n <= 0 {
		n = 1
	}
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(sampling.Temperature)),
		TopP:             genai.Ptr(float32(sampling.TopP)),
		FrequencyPenalty: genai.Ptr(float32(sampling.FrequencyPenalty)),
		PresencePenalty:  genai.Ptr(float32(sampling.PresencePenalty)),
		CandidateCount:   int32(n),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, &core.CompletionError{Provider: "gemini", Err: err}
	}

	candidates := make([]core.Candidate, 0, len(resp.Candidates))
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, p := range c.Content.Parts {
			if p != nil {
				sb.WriteString(p.Text)
			}
		}
		candidates = append(candidates, core.Candidate{Content: sb.String()})
	}

	log.FromCtx(ctx).Debug().
		Str("provider", "gemini").
		Str("model", g.model).
		Int("candidates", len(candidates)).
		Msg("completion received")

	return candidates, nil
}

// toGeminiContents maps chat messages onto Gemini roles. System messages are
// merged into a single system instruction.
func toGeminiContents(messages []core.Message) ([]*genai.Content, string) {
	var system []string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case core.RoleSystem:
			system = append(system, m.Content)
		case core.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return contents, strings.Join(system, "\n\n")
}
