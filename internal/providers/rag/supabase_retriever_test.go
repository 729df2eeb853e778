package rag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct {
	vec []float32
	err error
	got string
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	s.got = text
	return s.vec, s.err
}

func TestSupabaseRetriever_Retrieve(t *testing.T) {
	var req matchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/rpc/match_documents", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		fmt.Fprint(w, `[{"id":1,"content":"Push a model with cog.","url":"https://example.com/push","similarity":0.88}]`)
	}))
	defer srv.Close()

	emb := &stubEmbedder{vec: []float32{0.1, 0.2, 0.3}}
	r := NewSupabaseRetriever(SupabaseConfig{URL: srv.URL + "/", APIKey: "secret"}, emb)

	passages, err := r.Retrieve(context.Background(), "how to push?", core.RetrieveOptions{Threshold: 0.78, Limit: 7})
	require.NoError(t, err)

	assert.Equal(t, "how to push?", emb.got)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, req.QueryEmbedding)
	assert.Equal(t, 0.78, req.SimilarityThreshold)
	assert.Equal(t, 7, req.MatchCount)

	require.Len(t, passages, 1)
	assert.Equal(t, "Push a model with cog.", passages[0].Content)
	assert.Equal(t, "https://example.com/push", passages[0].URL)
}

func TestSupabaseRetriever_EmbedFailure(t *testing.T) {
	emb := &stubEmbedder{err: errors.New("quota exceeded")}
	r := NewSupabaseRetriever(SupabaseConfig{URL: "http://127.0.0.1:0", APIKey: "k"}, emb)

	_, err := r.Retrieve(context.Background(), "q", core.RetrieveOptions{Threshold: 0.5, Limit: 3})

	var retrievalErr *core.RetrievalError
	require.True(t, errors.As(err, &retrievalErr))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestOpenAIEmbedder_Embed(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		fmt.Fprint(w, `{"data":[{"embedding":[0.5,0.25]}]}`)
	}))
	defer srv.Close()

	e := NewOpenAIEmbedder(srv.URL, "key", "", nil)
	vec, err := e.Embed(context.Background(), "line one\nline two")
	require.NoError(t, err)

	assert.Equal(t, []float32{0.5, 0.25}, vec)
	assert.Equal(t, "line one line two", payload["input"])
	assert.Equal(t, DefaultEmbeddingModel, payload["model"])
}

func TestOpenAIEmbedder_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer srv.Close()

	e := NewOpenAIEmbedder(srv.URL, "", "", nil)
	_, err := e.Embed(context.Background(), "text")
	assert.Error(t, err)
}
