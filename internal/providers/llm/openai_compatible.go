package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/sandevgo/docbot/pkg/retry"
)

type OpenAICompatible struct {
	baseProvider
	name         string
	authHeader   string
	authPrefix   string
	extraHeaders map[string]string
}

type OpenAICompatibleConfig struct {
	Name         string
	BaseURL      string
	APIKey       string
	Model        string
	AuthHeader   string // e.g., "Authorization"
	AuthPrefix   string // e.g., "Bearer "
	ExtraHeaders map[string]string
	Retrier      *retry.Retrier
}

func NewOpenAICompatible(cfg OpenAICompatibleConfig) *OpenAICompatible {
	name := cfg.Name
	if name == "" {
		name = "openai-compatible"
	}
	return &OpenAICompatible{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Retrier),
		name:         name,
		authHeader:   cfg.AuthHeader,
		authPrefix:   cfg.AuthPrefix,
		extraHeaders: cfg.ExtraHeaders,
	}
}

type chatRequest struct {
	Model            string         `json:"model"`
	Messages         []core.Message `json:"messages"`
	Temperature      float64        `json:"temperature"`
	TopP             float64        `json:"top_p"`
	FrequencyPenalty float64        `json:"frequency_penalty"`
	PresencePenalty  float64        `json:"presence_penalty"`
	N                int            `json:"n"`
}

func (o *OpenAICompatible) Complete(ctx context.Context, messages []core.Message, sampling core.Sampling) ([]core.Candidate, error) {
	n := sampling.Candidates
	if n <= 0 {
		n = 1
	}
	payload := chatRequest{
		Model:            o.model,
		Messages:         messages,
		Temperature:      sampling.Temperature,
		TopP:             sampling.TopP,
		FrequencyPenalty: sampling.FrequencyPenalty,
		PresencePenalty:  sampling.PresencePenalty,
		N:                n,
	}

	headers := make(map[string]string)
	if o.authHeader != "" && o.apiKey != "" {
		headers[o.authHeader] = o.authPrefix + o.apiKey
	}
	for k, v := range o.extraHeaders {
		headers[k] = v
	}

	data, err := o.post(ctx, "/v1/chat/completions", payload, headers)
	if err != nil {
		return nil, &core.CompletionError{Provider: o.name, Err: err}
	}

	candidates, err := parseOpenAIResponse(data)
	if err != nil {
		return nil, &core.CompletionError{Provider: o.name, Err: err}
	}

	log.FromCtx(ctx).Debug().
		Str("provider", o.name).
		Str("model", o.model).
		Int("candidates", len(candidates)).
		Msg("completion received")

	return candidates, nil
}

func parseOpenAIResponse(data []byte) ([]core.Candidate, error) {
	var result struct {
		Choices []struct {
			Message core.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	candidates := make([]core.Candidate, 0, len(result.Choices))
	for _, c := range result.Choices {
		candidates = append(candidates, core.Candidate{Content: c.Message.Content})
	}
	return candidates, nil
}
