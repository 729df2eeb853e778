package main

import (
	"fmt"
	"strings"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/service/ui"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := NewApp(ctx)
		defer app.Close()

		question := strings.Join(args, " ")
		reply := app.Agent.Think(ctx, []core.Turn{{Role: core.RoleUser, Content: question}})
		if !reply.Answered {
			return fmt.Errorf("no answer produced, run with --debug for details")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, reply.Text)
		if len(reply.Sources) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.TitleStyle.Render("SOURCES"))
			for _, s := range reply.Sources {
				title := s.Title
				if title == "" {
					title = s.URL
				}
				fmt.Fprintf(out, "  %s %s\n", title, ui.DescStyle.Render(s.URL))
			}
		}
		if reply.Unanswered {
			fmt.Fprintln(out, ui.FlagStyle.Render("(flagged as unanswered)"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
