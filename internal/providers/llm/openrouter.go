package llm

import (
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/retry"
)

func NewOpenRouter(apiKey, model string, retrier *retry.Retrier) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		Name:       "openrouter",
		BaseURL:    "https://openrouter.ai/api",
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
		ExtraHeaders: map[string]string{
			"HTTP-Referer": core.BotRepositoryURL,
			"X-Title":      core.BotName,
		},
		Retrier: retrier,
	})
}
