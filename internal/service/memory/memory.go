package memory

import (
	"context"
	"fmt"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
)

// Memory keeps per-session conversation turns so transports can hand the
// full recent history to the orchestrator on every question.
type Memory struct {
	repo   core.MessagesRepository
	window int
}

func NewMemory(repo core.MessagesRepository, window int) *Memory {
	return &Memory{
		repo:   repo,
		window: window,
	}
}

// Conversation returns the recent history of a session followed by the new
// question.
func (m *Memory) Conversation(ctx context.Context, sessionID, question string) ([]core.Turn, error) {
	history, err := m.repo.GetTurns(ctx, sessionID, m.window)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	turns := make([]core.Turn, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, core.Turn{Role: core.RoleUser, Content: question})
	return turns, nil
}

// Remember persists one question/answer exchange.
func (m *Memory) Remember(ctx context.Context, sessionID, question, answer string) error {
	if err := m.repo.AddTurn(ctx, sessionID, core.Turn{Role: core.RoleUser, Content: question}); err != nil {
		return fmt.Errorf("save question: %w", err)
	}
	if answer == "" {
		return nil
	}
	if err := m.repo.AddTurn(ctx, sessionID, core.Turn{Role: core.RoleAssistant, Content: answer}); err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

func (m *Memory) Forget(ctx context.Context, sessionID string) error {
	log.FromCtx(ctx).Info().Str("session_id", sessionID).Msg("clearing session history")
	return m.repo.DeleteSession(ctx, sessionID)
}
