package rag

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/sandevgo/docbot/pkg/retry"
)

// NewRetriever creates the configured passage retriever.
func NewRetriever(ctx context.Context, cfg *config.RetrieverConfig) (core.Retriever, error) {
	log.FromCtx(ctx).Info().
		Str("backend", cfg.Backend).
		Msg("starting retriever")

	retrier := retry.NewRetrier(&retry.Config{
		MaxRetries:    2,
		BackoffFactor: 2,
		InitialDelay:  200 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		Jitter:        50 * time.Millisecond,
	})

	switch cfg.Backend {
	case "http":
		if cfg.URL == "" {
			return nil, fmt.Errorf("RETRIEVER_URL is required for the http backend")
		}
		return NewHTTPRetriever(HTTPRetrieverConfig{
			URL:           cfg.URL,
			ContentLength: cfg.ContentLength,
			Retrier:       retrier,
		}), nil
	case "supabase":
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are required for the supabase backend")
		}
		embedder, err := NewEmbedder(ctx, cfg, retrier)
		if err != nil {
			return nil, err
		}
		return NewSupabaseRetriever(SupabaseConfig{
			URL:      cfg.SupabaseURL,
			APIKey:   cfg.SupabaseKey,
			Function: cfg.SupabaseFunction,
			Retrier:  retrier,
		}, embedder), nil
	default:
		return nil, fmt.Errorf("unknown retriever backend: %s", cfg.Backend)
	}
}

func NewEmbedder(ctx context.Context, cfg *config.RetrieverConfig, retrier *retry.Retrier) (core.Embedder, error) {
	switch cfg.EmbeddingProvider {
	case "openai":
		return NewOpenAIEmbedder(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModel, retrier), nil
	case "gemini":
		e, err := NewGenAIEmbedder(ctx, cfg.EmbeddingAPIKey, cfg.EmbeddingModel)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.EmbeddingProvider)
	}
}
