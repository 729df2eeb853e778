package llm

import (
	"strings"

	"github.com/sandevgo/docbot/pkg/retry"
)

// NewOllama talks to Ollama through its OpenAI-compatible endpoint.
func NewOllama(baseURL, apiKey, model string, retrier *retry.Retrier) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		Name:       "ollama",
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
		Retrier:    retrier,
	})
}
