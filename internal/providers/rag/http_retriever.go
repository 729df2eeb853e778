package rag

import (
	"context"
	"time"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/sandevgo/docbot/pkg/retry"
)

const DefaultContentLength = 1000

// HTTPRetriever queries a retriever service that embeds the query and
// searches the documentation index in one round trip.
type HTTPRetriever struct {
	url           string
	contentLength int
	http          jsonClient
}

type HTTPRetrieverConfig struct {
	URL           string
	ContentLength int
	Timeout       time.Duration
	Retrier       *retry.Retrier
}

func NewHTTPRetriever(cfg HTTPRetrieverConfig) *HTTPRetriever {
	if cfg.ContentLength <= 0 {
		cfg.ContentLength = DefaultContentLength
	}
	return &HTTPRetriever{
		url:           cfg.URL,
		contentLength: cfg.ContentLength,
		http:          newJSONClient(cfg.Timeout, cfg.Retrier),
	}
}

type retrieveRequest struct {
	Text                string  `json:"text"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
	Limit               int     `json:"limit"`
	ContentLength       int     `json:"content_length"`
}

func (r *HTTPRetriever) Retrieve(ctx context.Context, query string, opts core.RetrieveOptions) ([]core.Passage, error) {
	if err := validateOptions(opts); err != nil {
		return nil, &core.RetrievalError{Query: query, Err: err}
	}

	req := retrieveRequest{
		Text:                query,
		SimilarityThreshold: opts.Threshold,
		Limit:               opts.Limit,
		ContentLength:       r.contentLength,
	}

	var docs []passageRow
	if err := r.http.postJSON(ctx, r.url, req, nil, &docs); err != nil {
		return nil, &core.RetrievalError{Query: query, Err: err}
	}

	passages := rankPassages(docs, opts)
	log.FromCtx(ctx).Debug().
		Int("received", len(docs)).
		Int("kept", len(passages)).
		Msg("retrieved passages")

	return passages, nil
}
