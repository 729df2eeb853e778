package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/docbot/pkg/log"
)

type RetrieverConfig struct {
	// Backend is "http" (retriever service) or "supabase" (match_documents RPC).
	Backend string `env:"RETRIEVER_BACKEND" envDefault:"http"`

	URL           string `env:"RETRIEVER_URL"`
	ContentLength int    `env:"RETRIEVER_CONTENT_LENGTH" envDefault:"1000"`

	SupabaseURL      string `env:"SUPABASE_URL"`
	SupabaseKey      string `env:"SUPABASE_KEY"`
	SupabaseFunction string `env:"SUPABASE_MATCH_FUNCTION" envDefault:"match_documents"`

	// Embedder used by the supabase backend: "openai" or "gemini".
	EmbeddingProvider string `env:"EMBEDDING_PROVIDER" envDefault:"openai"`
	EmbeddingModel    string `env:"EMBEDDING_MODEL" envDefault:"text-embedding-ada-002"`
	EmbeddingBaseURL  string `env:"EMBEDDING_BASE_URL" envDefault:"https://api.openai.com"`
	EmbeddingAPIKey   string `env:"EMBEDDING_API_KEY"`
}

func NewRetrieverConfig(ctx context.Context) *RetrieverConfig {
	c := &RetrieverConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Retriever config")
	}
	return c
}
