package brain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/service/memory"
	"github.com/sandevgo/docbot/pkg/log"
)

type Config struct {
	Budget      int
	Threshold   float64
	FreshLimit  int
	MemoryLimit int
	// Mode is one of config.MemoryModeFold, MemoryModeFoldFresh or
	// MemoryModeStateless.
	Mode     string
	Preamble Preamble
}

func NewConfig(app *config.AppConfig, preamble Preamble) Config {
	return Config{
		Budget:      app.TokenBudget,
		Threshold:   app.SimilarityThreshold,
		FreshLimit:  app.RetrievalLimit,
		MemoryLimit: app.MemoryRetrievalLimit,
		Mode:        app.MemoryMode,
		Preamble:    preamble,
	}
}

// Brain answers a conversation from documentation passages. It holds no
// per-request state and is safe for concurrent use.
type Brain struct {
	retriever core.Retriever
	completer core.Completer
	packer    *memory.Packer
	folder    *memory.Folder
	cfg       Config

	freshBudget int
}

func New(retriever core.Retriever, completer core.Completer, estimator core.TokenEstimator, cfg Config) *Brain {
	if cfg.Mode == "" {
		cfg.Mode = config.MemoryModeFold
	}

	// With fold_fresh both contexts share one budget so the prompt stays
	// under the same ceiling as the other modes.
	memoryBudget, freshBudget := cfg.Budget, cfg.Budget
	if cfg.Mode == config.MemoryModeFoldFresh {
		memoryBudget = cfg.Budget / 2
		freshBudget = cfg.Budget - memoryBudget
	}

	packer := memory.NewPacker(estimator)
	return &Brain{
		retriever: retriever,
		completer: completer,
		packer:    packer,
		folder: memory.NewFolder(retriever, packer, memory.FolderConfig{
			Threshold: cfg.Threshold,
			Limit:     cfg.MemoryLimit,
			Budget:    memoryBudget,
		}),
		cfg:         cfg,
		freshBudget: freshBudget,
	}
}

// Think never fails: any error is logged and reported as a result without
// an answer or sources.
func (b *Brain) Think(ctx context.Context, conversation []core.Turn) core.ThinkResult {
	res, err := b.Run(ctx, conversation)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("think failed")
		return core.ThinkResult{}
	}
	return res
}

// Run is Think with the failure cause exposed.
func (b *Brain) Run(ctx context.Context, conversation []core.Turn) (core.ThinkResult, error) {
	logger := log.FromCtx(ctx).With().Str("component", "brain").Logger()
	start := time.Now()

	if err := core.ValidateConversation(conversation); err != nil {
		return core.ThinkResult{}, err
	}

	question := conversation[len(conversation)-1].Content
	history := conversation[:len(conversation)-1]
	if b.cfg.Mode == config.MemoryModeStateless {
		history = nil
	}

	messages := b.cfg.Preamble.Messages()
	var retrieved []core.Passage
	path := "fresh"

	block, err := b.folder.Fold(ctx, history)
	if err != nil {
		return core.ThinkResult{}, fmt.Errorf("fold history: %w", err)
	}

	withContext := true
	var contextText string
	if block != nil {
		path = "memory"
		messages = append(messages, block.Messages()...)
		retrieved = append(retrieved, block.Retrieved...)
		withContext = b.cfg.Mode == config.MemoryModeFoldFresh
	}

	if withContext {
		passages, err := b.retriever.Retrieve(ctx, question, core.RetrieveOptions{
			Threshold: b.cfg.Threshold,
			Limit:     b.cfg.FreshLimit,
		})
		if err != nil {
			return core.ThinkResult{}, fmt.Errorf("retrieve context: %w", err)
		}
		packed := b.packer.Pack(ctx, passages, b.freshBudget)
		contextText = packed.Text
		retrieved = append(retrieved, passages...)
	}

	messages = append(messages, questionMessage(contextText, question, withContext))

	candidates, err := b.completer.Complete(ctx, messages, core.DeterministicSampling())
	if err != nil {
		return core.ThinkResult{}, err
	}
	if len(candidates) == 0 {
		return core.ThinkResult{}, &core.CompletionError{Err: core.ErrNoCandidates}
	}

	answer := strings.TrimSpace(candidates[0].Content)
	if answer == "" {
		return core.ThinkResult{}, &core.CompletionError{Err: fmt.Errorf("%w: empty content", core.ErrNoCandidates)}
	}

	sources := Sources(retrieved)
	logger.Info().
		Str("path", path).
		Int("messages", len(messages)).
		Int("sources", len(sources)).
		Dur("took", time.Since(start)).
		Msg("question answered")

	return core.ThinkResult{Answer: answer, Sources: sources}, nil
}

// IsAbsent reports whether err means the model produced nothing, as opposed
// to a transport or retrieval failure.
func IsAbsent(err error) bool {
	return errors.Is(err, core.ErrNoCandidates)
}
