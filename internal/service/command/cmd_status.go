package command

import (
	"context"
	"strconv"

	"github.com/sandevgo/docbot/internal/core"
)

// Status describes the running answer pipeline.
type Status struct {
	Provider    string
	Model       string
	Retriever   string
	MemoryMode  string
	TokenBudget int
}

type StatusCommand struct {
	status    Status
	formatter *ResponseFormatter
}

func NewStatusCommand(status Status) *StatusCommand {
	return &StatusCommand{
		status:    status,
		formatter: NewResponseFormatter(),
	}
}

func (c *StatusCommand) Name() string {
	return "status"
}

func (c *StatusCommand) Usage() string {
	return "/status"
}

func (c *StatusCommand) Description() string {
	return "Show model and retrieval settings"
}

func (c *StatusCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	return c.formatter.Combine(
		c.formatter.Info(core.BotName+" "+core.BotVersion),
		c.formatter.Label("Provider", c.status.Provider)+
			c.formatter.Label("Model", c.status.Model)+
			c.formatter.Label("Retriever", c.status.Retriever)+
			c.formatter.Label("Memory", c.status.MemoryMode)+
			c.formatter.Label("Token budget", strconv.Itoa(c.status.TokenBudget)),
	), nil
}
