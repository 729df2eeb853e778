package main

import (
	"context"
	"os"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/service/ui"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug       bool
	runtimePath string
)

var rootCmd = &cobra.Command{
	Use:   "docbot",
	Short: "DocBot - answers questions from your documentation",
	Long:  `DocBot retrieves relevant documentation passages and answers questions about them in chat.`,
	Example: `  docbot init --provider openai --model gpt-4o-mini --retriever-url http://localhost:8000/search
  docbot ask "how do I rotate an API key?"
  docbot start --debug`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config reads the runtime path from the environment
		if runtimePath != "" {
			return os.Setenv("DOCBOT_RUNTIME_PATH", runtimePath)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&runtimePath, "runtime", "", "runtime directory (default ~/.docbot)")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces | StyleFlag}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces | StyleFlag}}
{{end}}{{if .HasExample}}{{StyleTitle "EXAMPLES"}}
{{.Example}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
