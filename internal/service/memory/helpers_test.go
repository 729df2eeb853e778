package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/sandevgo/docbot/internal/core"
)

// wordEstimator counts whitespace separated words. It is additive over
// concatenation at whitespace boundaries, which keeps budget math exact.
type wordEstimator struct{}

func (wordEstimator) Estimate(text string) int {
	return len(strings.Fields(text))
}

type stubRetriever struct {
	mu       sync.Mutex
	passages []core.Passage
	err      error
	queries  []string
	opts     []core.RetrieveOptions
}

func (s *stubRetriever) Retrieve(ctx context.Context, query string, opts core.RetrieveOptions) ([]core.Passage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	s.opts = append(s.opts, opts)
	if s.err != nil {
		return nil, s.err
	}
	return s.passages, nil
}

type memRepo struct {
	turns   map[string][]core.Turn
	deleted []string
	err     error
}

func newMemRepo() *memRepo {
	return &memRepo{turns: make(map[string][]core.Turn)}
}

func (r *memRepo) AddTurn(ctx context.Context, sessionID string, turn core.Turn) error {
	if r.err != nil {
		return r.err
	}
	r.turns[sessionID] = append(r.turns[sessionID], turn)
	return nil
}

func (r *memRepo) GetTurns(ctx context.Context, sessionID string, limit int) ([]core.Turn, error) {
	if r.err != nil {
		return nil, r.err
	}
	turns := r.turns[sessionID]
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns, nil
}

func (r *memRepo) DeleteSession(ctx context.Context, sessionID string) error {
	delete(r.turns, sessionID)
	r.deleted = append(r.deleted, sessionID)
	return nil
}
