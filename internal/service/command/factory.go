package command

import (
	"github.com/sandevgo/docbot/internal/core"
)

// NewRouter wires every chat command. /help lists the router it lives in.
func NewRouter(
	sessions SessionForgetter,
	unanswered core.UnansweredRepository,
	status Status,
	adminSessions []string,
) *Router {
	r := New([]core.Command{
		NewResetCommand(sessions),
		NewUnansweredCommand(unanswered, adminSessions),
		NewStatusCommand(status),
	})
	r.Register(NewHelpCommand(r))
	return r
}
