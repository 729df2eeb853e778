package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/docbot/internal/core"
)

type HelpCommand struct {
	router    core.CmdRouter
	formatter *ResponseFormatter
}

func NewHelpCommand(router core.CmdRouter) *HelpCommand {
	return &HelpCommand{
		router:    router,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Usage() string {
	return "/help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	var items []string
	for _, cmd := range c.router.ListCommands() {
		items = append(items, fmt.Sprintf("`%s`  %s", cmd.Usage(), cmd.Description()))
	}

	return c.formatter.Combine(
		c.formatter.Info(core.BotName),
		"Ask any question about the documentation and I will answer from it.\n",
		c.formatter.List(items),
	), nil
}
