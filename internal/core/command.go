package core

import "context"

// CmdRouter dispatches slash commands typed into a chat.
type CmdRouter interface {
	// Execute returns false when input is not a command.
	Execute(ctx context.Context, sessionID, input string) (string, bool)
	ListCommands() []Command
}

type Command interface {
	Name() string
	// Usage is the invocation line shown by /help, e.g. "/unanswered [count]".
	Usage() string
	Description() string
	Execute(ctx context.Context, sessionID string, args []string) (string, error)
}
