package memory

import (
	"context"
	"strings"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
)

// Separator terminates every packed passage and is charged to the budget
// with it.
const Separator = "\n---\n"

// Packed is the result of fitting passages into a token budget.
type Packed struct {
	Text     string
	Tokens   int
	Passages []core.Passage
}

// Included reports how many passages made it into Text.
func (p Packed) Included() int {
	return len(p.Passages)
}

// Packer greedily accumulates ranked passages under a token ceiling.
type Packer struct {
	estimator core.TokenEstimator
}

func NewPacker(estimator core.TokenEstimator) *Packer {
	return &Packer{estimator: estimator}
}

// Pack walks passages in order and stops at the first one that would push
// the running total over budget. That passage and everything after it are
// dropped. A first passage larger than the budget yields an empty result.
func (p *Packer) Pack(ctx context.Context, passages []core.Passage, budget int) Packed {
	var (
		sb       strings.Builder
		total    int
		included []core.Passage
	)

	stoppedAt := -1
	for i, passage := range passages {
		unit := strings.TrimSpace(passage.Content) + Separator
		cost := p.estimator.Estimate(unit)

		if total+cost > budget {
			stoppedAt = i
			log.FromCtx(ctx).Debug().
				Int("tokens", total).
				Int("tokens_at_stop", total+cost).
				Int("budget", budget).
				Int("dropped", len(passages)-i).
				Msg("context budget reached")
			break
		}

		total += cost
		sb.WriteString(unit)
		included = append(included, passage)
	}

	log.FromCtx(ctx).Debug().
		Int("tokens", total).
		Int("included", len(included)).
		Int("candidates", len(passages)).
		Bool("truncated", stoppedAt >= 0).
		Msg("context packed")

	return Packed{
		Text:     sb.String(),
		Tokens:   total,
		Passages: included,
	}
}
