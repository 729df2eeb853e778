package rag

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

const DefaultEncoding = "cl100k_base"

// Vocabularies ship with the binary so token counts do not depend on
// reaching the tiktoken CDN.
func init() {
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

// Tokenizer estimates token counts with a BPE vocabulary. The encoding is
// loaded on first use and shared by all callers.
type Tokenizer struct {
	encoding string

	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
}

func NewTokenizer(encoding string) *Tokenizer {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	return &Tokenizer{encoding: encoding}
}

// Load resolves the encoding eagerly so that a missing vocabulary fails at
// startup instead of on the first question.
func (t *Tokenizer) Load() error {
	t.once.Do(func() {
		t.enc, t.err = tiktoken.GetEncoding(t.encoding)
		if t.err != nil {
			t.err = fmt.Errorf("failed to load tiktoken encoding %q: %w", t.encoding, t.err)
		}
	})
	return t.err
}

// Estimate returns the number of BPE tokens in text. If the vocabulary could
// not be loaded it falls back to the character heuristic so budgets stay
// bounded.
func (t *Tokenizer) Estimate(text string) int {
	if text == "" {
		return 0
	}
	if err := t.Load(); err != nil {
		return CharEstimator{}.Estimate(text)
	}
	return len(t.enc.Encode(text, nil, nil))
}

// CharEstimator approximates tokens as one per four bytes, rounded up.
type CharEstimator struct{}

func (CharEstimator) Estimate(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 3) / 4
}
