package memory

import (
	"context"
	"strings"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
)

// Block is the folded representation of every turn before the current one.
type Block struct {
	User      core.Message
	Assistant core.Message

	// Query is the retrieval query built from prior user turns.
	Query     string
	Context   Packed
	Retrieved []core.Passage
}

// Messages returns the synthetic user/assistant pair.
func (b *Block) Messages() []core.Message {
	return []core.Message{b.User, b.Assistant}
}

type FolderConfig struct {
	Threshold float64
	Limit     int
	Budget    int
}

// Folder collapses conversation history into a two-message memory block
// backed by a retrieval over everything the user asked so far.
type Folder struct {
	retriever core.Retriever
	packer    *Packer
	cfg       FolderConfig
}

func NewFolder(retriever core.Retriever, packer *Packer, cfg FolderConfig) *Folder {
	return &Folder{
		retriever: retriever,
		packer:    packer,
		cfg:       cfg,
	}
}

// Fold expects the history with the current turn already removed. It returns
// nil when the history holds no user text to retrieve with, so the caller
// falls back to fresh retrieval.
func (f *Folder) Fold(ctx context.Context, history []core.Turn) (*Block, error) {
	if len(history) == 0 {
		return nil, nil
	}

	var userTurns, assistantTurns []string
	for _, t := range history {
		switch t.Role {
		case core.RoleUser:
			userTurns = append(userTurns, t.Content)
		case core.RoleAssistant:
			assistantTurns = append(assistantTurns, t.Content)
		}
	}
	joinedUser := strings.Join(userTurns, "\n")
	joinedAssistant := strings.Join(assistantTurns, "\n")
	if strings.TrimSpace(joinedUser) == "" {
		return nil, nil
	}

	passages, err := f.retriever.Retrieve(ctx, joinedUser, core.RetrieveOptions{
		Threshold: f.cfg.Threshold,
		Limit:     f.cfg.Limit,
	})
	if err != nil {
		return nil, err
	}

	packed := f.packer.Pack(ctx, passages, f.cfg.Budget)

	log.FromCtx(ctx).Debug().
		Int("turns", len(history)).
		Int("user_turns", len(userTurns)).
		Int("passages", packed.Included()).
		Msg("history folded")

	return &Block{
		User: core.Message{
			Role:    core.RoleUser,
			Content: "CONTEXT:\n" + packed.Text + "\n\nQUESTION:\n" + joinedUser,
		},
		Assistant: core.Message{
			Role:    core.RoleAssistant,
			Content: joinedAssistant,
		},
		Query:     joinedUser,
		Context:   packed,
		Retrieved: passages,
	}, nil
}
