package command

import (
	"context"
	"fmt"
)

// SessionForgetter drops the stored history of a session.
type SessionForgetter interface {
	Forget(ctx context.Context, sessionID string) error
}

type ResetCommand struct {
	sessions  SessionForgetter
	formatter *ResponseFormatter
}

func NewResetCommand(sessions SessionForgetter) *ResetCommand {
	return &ResetCommand{
		sessions:  sessions,
		formatter: NewResponseFormatter(),
	}
}

func (c *ResetCommand) Name() string {
	return "reset"
}

func (c *ResetCommand) Usage() string {
	return "/reset"
}

func (c *ResetCommand) Description() string {
	return "Forget this conversation and start over"
}

func (c *ResetCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if err := c.sessions.Forget(ctx, sessionID); err != nil {
		return "", fmt.Errorf("failed to reset conversation: %w", err)
	}
	return c.formatter.Success("Conversation cleared"), nil
}
