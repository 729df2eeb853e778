package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/docbot/pkg/retry"
)

const DefaultEmbeddingModel = "text-embedding-ada-002"

// OpenAIEmbedder calls an OpenAI-compatible /v1/embeddings endpoint. The
// query must be embedded with the same model that built the index.
type OpenAIEmbedder struct {
	baseURL string
	apiKey  string
	model   string
	http    jsonClient
}

func NewOpenAIEmbedder(baseURL, apiKey, model string, retrier *retry.Retrier) *OpenAIEmbedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &OpenAIEmbedder{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    newJSONClient(60*time.Second, retrier),
	}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	// Newlines hurt embedding quality; the index was built the same way.
	input := strings.ReplaceAll(text, "\n", " ")

	payload := map[string]any{
		"model": e.model,
		"input": input,
	}
	headers := map[string]string{}
	if e.apiKey != "" {
		headers["Authorization"] = "Bearer " + e.apiKey
	}

	var resp struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := e.http.postJSON(ctx, e.baseURL+"/v1/embeddings", payload, headers, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return resp.Data[0].Embedding, nil
}
