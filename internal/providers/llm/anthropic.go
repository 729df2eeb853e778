package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/retry"
)

const (
	anthropicVersion   = "2023-06-01"
	anthropicMaxTokens = 1024
)

// Anthropic uses the Messages API. It always yields at most one candidate
// and takes system prompts out of band.
type Anthropic struct {
	baseProvider
}

func NewAnthropic(apiKey, model string, retrier *retry.Retrier) *Anthropic {
	return &Anthropic{
		baseProvider: newBaseProvider("https://api.anthropic.com", apiKey, model, retrier),
	}
}

func (a *Anthropic) Complete(ctx context.Context, history []core.Message, sampling core.Sampling) ([]core.Candidate, error) {
	type msg struct {
		Role    core.Role `json:"role"`
		Content string    `json:"content"`
	}

	var system []string
	var messages []msg
	for _, m := range history {
		if m.Role == core.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		messages = append(messages, msg{Role: m.Role, Content: m.Content})
	}

	payload := map[string]any{
		"model":       a.model,
		"max_tokens":  anthropicMaxTokens,
		"messages":    messages,
		"temperature": sampling.Temperature,
	}
	if len(system) > 0 {
		payload["system"] = strings.Join(system, "\n\n")
	}
	// The API rejects temperature and top_p together unless top_p narrows
	// the distribution.
	if sampling.TopP > 0 && sampling.TopP < 1 {
		payload["top_p"] = sampling.TopP
	}

	headers := map[string]string{
		"x-api-key":         a.apiKey,
		"anthropic-version": anthropicVersion,
	}

	data, err := a.post(ctx, "/v1/messages", payload, headers)
	if err != nil {
		return nil, &core.CompletionError{Provider: "anthropic", Err: err}
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &core.CompletionError{Provider: "anthropic", Err: fmt.Errorf("decode: %w", err)}
	}

	var text string
	for _, c := range result.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}
	if text == "" {
		return nil, nil
	}
	return []core.Candidate{{Content: text}}, nil
}
