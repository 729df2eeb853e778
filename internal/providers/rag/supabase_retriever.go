package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/sandevgo/docbot/pkg/retry"
)

const DefaultMatchFunction = "match_documents"

// SupabaseRetriever embeds the query locally and runs the similarity search
// as a PostgREST RPC against the ingested documents table.
type SupabaseRetriever struct {
	embedder core.Embedder
	rpcURL   string
	apiKey   string
	http     jsonClient
}

type SupabaseConfig struct {
	URL      string
	APIKey   string
	Function string
	Timeout  time.Duration
	Retrier  *retry.Retrier
}

func NewSupabaseRetriever(cfg SupabaseConfig, embedder core.Embedder) *SupabaseRetriever {
	if cfg.Function == "" {
		cfg.Function = DefaultMatchFunction
	}
	return &SupabaseRetriever{
		embedder: embedder,
		rpcURL:   strings.TrimRight(cfg.URL, "/") + "/rest/v1/rpc/" + cfg.Function,
		apiKey:   cfg.APIKey,
		http:     newJSONClient(cfg.Timeout, cfg.Retrier),
	}
}

type matchRequest struct {
	QueryEmbedding      []float32 `json:"query_embedding"`
	SimilarityThreshold float64   `json:"similarity_threshold"`
	MatchCount          int       `json:"match_count"`
}

func (r *SupabaseRetriever) Retrieve(ctx context.Context, query string, opts core.RetrieveOptions) ([]core.Passage, error) {
	if err := validateOptions(opts); err != nil {
		return nil, &core.RetrievalError{Query: query, Err: err}
	}

	vec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, &core.RetrievalError{Query: query, Err: fmt.Errorf("embed query: %w", err)}
	}

	headers := map[string]string{
		"apikey":        r.apiKey,
		"Authorization": "Bearer " + r.apiKey,
	}
	req := matchRequest{
		QueryEmbedding:      vec,
		SimilarityThreshold: opts.Threshold,
		MatchCount:          opts.Limit,
	}

	var rows []passageRow
	if err := r.http.postJSON(ctx, r.rpcURL, req, headers, &rows); err != nil {
		return nil, &core.RetrievalError{Query: query, Err: fmt.Errorf("match documents: %w", err)}
	}

	passages := rankPassages(rows, opts)
	log.FromCtx(ctx).Debug().
		Int("received", len(rows)).
		Int("kept", len(passages)).
		Msg("matched documents")

	return passages, nil
}
