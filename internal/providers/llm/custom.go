package llm

import (
	"strings"

	"github.com/sandevgo/docbot/pkg/retry"
)

func NewCustomOpenAI(baseURL, apiKey, model string, retrier *retry.Retrier) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		Name:       "custom",
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
		Retrier:    retrier,
	})
}
