package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandevgo/docbot/internal/core"
)

const (
	defaultUnansweredLimit = 10
	maxUnansweredLimit     = 100
)

// UnansweredCommand shows refused questions. Admin sessions see every
// session; any other caller sees only its own questions.
type UnansweredCommand struct {
	repo      core.UnansweredRepository
	admins    map[string]struct{}
	formatter *ResponseFormatter
}

func NewUnansweredCommand(repo core.UnansweredRepository, adminSessions []string) *UnansweredCommand {
	admins := make(map[string]struct{}, len(adminSessions))
	for _, s := range adminSessions {
		admins[s] = struct{}{}
	}
	return &UnansweredCommand{
		repo:      repo,
		admins:    admins,
		formatter: NewResponseFormatter(),
	}
}

func (c *UnansweredCommand) Name() string {
	return "unanswered"
}

func (c *UnansweredCommand) Usage() string {
	return "/unanswered [count]"
}

func (c *UnansweredCommand) Description() string {
	return "Show recent questions the documentation could not answer"
}

func (c *UnansweredCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	limit := defaultUnansweredLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return c.formatter.Usage(c.Usage()), nil
		}
		limit = min(n, maxUnansweredLimit)
	}

	scope := sessionID
	if _, ok := c.admins[sessionID]; ok {
		scope = ""
	}

	questions, err := c.repo.ListUnanswered(ctx, scope, limit)
	if err != nil {
		return "", fmt.Errorf("failed to list unanswered questions: %w", err)
	}

	if len(questions) == 0 {
		return c.formatter.Success("Every question so far was answered"), nil
	}

	sections := []string{c.formatter.Info(fmt.Sprintf("Unanswered questions (%d)", len(questions)))}
	for _, q := range questions {
		author := q.Author
		if author == "" {
			author = q.SessionID
		}
		sections = append(sections,
			c.formatter.Label(q.CreatedAt.Format("2006-01-02 15:04"), author)+c.formatter.Quote(q.Question))
	}
	return c.formatter.Combine(sections...), nil
}
