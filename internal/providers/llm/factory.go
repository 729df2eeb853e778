package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/sandevgo/docbot/pkg/retry"
)

// NewCompleter creates the chat completer selected by configuration.
func NewCompleter(ctx context.Context, cfg *config.LLMConfig) (core.Completer, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("starting llm provider")

	retrier := retry.NewRetrier(&retry.Config{
		MaxRetries:    cfg.MaxRetries,
		BackoffFactor: 2,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		Jitter:        100 * time.Millisecond,
	})

	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.Model, retrier), nil
	case "anthropic":
		return NewAnthropic(cfg.AnthropicAPIKey, cfg.Model, retrier), nil
	case "openrouter":
		return NewOpenRouter(cfg.OpenRouterAPIKey, cfg.Model, retrier), nil
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.Model, retrier), nil
	case "custom":
		return NewCustomOpenAI(cfg.CustomOpenAIBaseURL, cfg.CustomOpenAIAPIKey, cfg.Model, retrier), nil
	case "gemini":
		g, err := NewGemini(ctx, cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
