package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/docbot/internal/core"
)

type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	c := &Router{
		commands: make(map[string]core.Command),
	}
	c.Register(commands...)
	return c
}

func (c *Router) Register(commands ...core.Command) {
	for _, cmd := range commands {
		c.commands[cmd.Name()] = cmd
	}
}

// Execute runs input as a slash command. The boolean reports whether input
// was a command at all; plain questions return false.
func (c *Router) Execute(ctx context.Context, sessionID, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	parts := strings.Fields(input)
	name := strings.TrimPrefix(parts[0], "/")
	// Telegram appends the bot name in groups: /help@docbot
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	args := parts[1:]

	cmd, ok := c.commands[name]
	if !ok {
		return fmt.Sprintf("Unknown command: /%s\n", name) + NewResponseFormatter().Tip("send /help to list commands"), true
	}

	result, err := cmd.Execute(ctx, sessionID, args)
	if err != nil {
		return NewResponseFormatter().Error(name, err), true
	}
	return result, true
}

func (c *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		res = append(res, cmd)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name() < res[j].Name()
	})
	return res
}
