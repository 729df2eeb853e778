package llm

import "github.com/sandevgo/docbot/pkg/retry"

// NewOpenAI creates a completer for the OpenAI chat completions API.
func NewOpenAI(apiKey, model string, retrier *retry.Retrier) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		Name:       "openai",
		BaseURL:    "https://api.openai.com",
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
		Retrier:    retrier,
	})
}
