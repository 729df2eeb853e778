package core

import "context"

// Retriever returns passages ranked by similarity, most similar first.
// Failures must surface as *RetrievalError, never as an empty result.
type Retriever interface {
	Retrieve(ctx context.Context, query string, opts RetrieveOptions) ([]Passage, error)
}

// Completer sends a prompt to a chat model. An empty candidate list is a
// valid response meaning "no answer".
type Completer interface {
	Complete(ctx context.Context, messages []Message, sampling Sampling) ([]Candidate, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// TokenEstimator approximates the token cost of a text span.
// Implementations must be deterministic and monotonic in text length.
type TokenEstimator interface {
	Estimate(text string) int
}
