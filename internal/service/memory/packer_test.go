package memory

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/providers/rag"
	"github.com/stretchr/testify/assert"
)

func words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(w, " ")
}

func TestPacker_Pack(t *testing.T) {
	// Each unit costs its words plus one for the "---" separator.
	p1 := core.Passage{Content: "  " + words(3) + "\n", URL: "u1"} // 4
	p2 := core.Passage{Content: words(5), URL: "u2"}               // 6
	p3 := core.Passage{Content: words(2), URL: "u3"}               // 3

	tests := []struct {
		name       string
		passages   []core.Passage
		budget     int
		wantText   string
		wantTokens int
		wantURLs   []string
	}{
		{
			name:       "all fit",
			passages:   []core.Passage{p1, p2, p3},
			budget:     13,
			wantText:   words(3) + Separator + words(5) + Separator + words(2) + Separator,
			wantTokens: 13,
			wantURLs:   []string{"u1", "u2", "u3"},
		},
		{
			name:       "stops at first overflow",
			passages:   []core.Passage{p1, p2, p3},
			budget:     9,
			wantText:   words(3) + Separator,
			wantTokens: 4,
			wantURLs:   []string{"u1"},
		},
		{
			name:       "later smaller passage is not considered",
			passages:   []core.Passage{p2, p1, p3},
			budget:     7,
			wantText:   words(5) + Separator,
			wantTokens: 6,
			wantURLs:   []string{"u2"},
		},
		{
			name:       "first passage over budget",
			passages:   []core.Passage{p2, p3},
			budget:     5,
			wantText:   "",
			wantTokens: 0,
		},
		{
			name:       "no passages",
			passages:   nil,
			budget:     4096,
			wantText:   "",
			wantTokens: 0,
		},
		{
			name:       "exactly at budget",
			passages:   []core.Passage{p1, p3},
			budget:     7,
			wantText:   words(3) + Separator + words(2) + Separator,
			wantTokens: 7,
			wantURLs:   []string{"u1", "u3"},
		},
	}

	packer := NewPacker(wordEstimator{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := packer.Pack(context.Background(), tt.passages, tt.budget)

			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantTokens, got.Tokens)
			assert.Equal(t, len(tt.wantURLs), got.Included())

			var urls []string
			for _, p := range got.Passages {
				urls = append(urls, p.URL)
			}
			if diff := cmp.Diff(tt.wantURLs, urls); diff != "" {
				t.Errorf("included passages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPacker_NeverExceedsBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	packer := NewPacker(wordEstimator{})
	est := wordEstimator{}

	for i := 0; i < 200; i++ {
		n := rng.Intn(12)
		passages := make([]core.Passage, n)
		for j := range passages {
			passages[j] = core.Passage{Content: words(rng.Intn(40)), URL: fmt.Sprintf("u%d", j)}
		}
		budget := rng.Intn(120)

		got := packer.Pack(context.Background(), passages, budget)

		assert.LessOrEqual(t, est.Estimate(got.Text), budget, "iteration %d", i)
		assert.Equal(t, est.Estimate(got.Text), got.Tokens, "iteration %d", i)
		// Included passages are always a prefix of the input.
		for k, p := range got.Passages {
			assert.Equal(t, passages[k], p, "iteration %d", i)
		}
	}
}

func TestPacker_WithinBudgetIncludesAllInOrder(t *testing.T) {
	passages := []core.Passage{
		{Content: "alpha"},
		{Content: "beta gamma"},
		{Content: "\tdelta\n"},
	}

	got := NewPacker(wordEstimator{}).Pack(context.Background(), passages, 4096)

	assert.Equal(t, "alpha\n---\nbeta gamma\n---\ndelta\n---\n", got.Text)
	assert.Equal(t, 3, got.Included())
	assert.Equal(t, 3, strings.Count(got.Text, Separator))
}

func TestPacker_TextWithinBudgetWithCharEstimator(t *testing.T) {
	est := rag.CharEstimator{}
	passages := []core.Passage{
		{Content: "alpha beta"},
		{Content: "gamma delta"},
	}

	for budget := 0; budget <= 12; budget++ {
		got := NewPacker(est).Pack(context.Background(), passages, budget)
		assert.LessOrEqual(t, est.Estimate(got.Text), budget, "budget %d", budget)
	}

	got := NewPacker(est).Pack(context.Background(), passages, 6)
	assert.Equal(t, "alpha beta"+Separator, got.Text)
	assert.Equal(t, 4, got.Tokens)
}
