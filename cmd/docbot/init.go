package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/pkg/env"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/spf13/cobra"
)

var initOpts struct {
	llm       config.LLMConfig
	retriever config.RetrieverConfig
	telegram  config.TelegramConfig
	force     bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .env file into the runtime directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()
		logger := log.FromCtx(ctx)

		runtimePath := config.GetRuntimePath()
		envPath := filepath.Join(runtimePath, ".env")
		if _, err := os.Stat(envPath); err == nil && !initOpts.force {
			return fmt.Errorf("%s already exists, use --force to overwrite", envPath)
		}

		var content string
		for _, section := range []any{&initOpts.llm, &initOpts.retriever, &initOpts.telegram} {
			part, err := env.MarshalEnv(section)
			if err != nil {
				return fmt.Errorf("marshal env: %w", err)
			}
			content += part
		}
		if initOpts.telegram.Token != "" {
			content += "ENABLE_TELEGRAM=true\n"
		}

		if err := os.MkdirAll(runtimePath, 0700); err != nil {
			return fmt.Errorf("create runtime dir: %w", err)
		}
		if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
			return fmt.Errorf("write %s: %w", envPath, err)
		}

		logger.Info().Str("path", envPath).Msg("configuration written")
		logger.Info().Msg("You can now run 'docbot start'.")
		return nil
	},
}

func init() {
	f := initCmd.Flags()
	f.StringVar(&initOpts.llm.Provider, "provider", "openai", "llm provider: openai, anthropic, openrouter, gemini, ollama, custom")
	f.StringVar(&initOpts.llm.Model, "model", "gpt-3.5-turbo", "chat model")
	f.StringVar(&initOpts.llm.OpenAIAPIKey, "openai-key", "", "OpenAI API key")
	f.StringVar(&initOpts.llm.AnthropicAPIKey, "anthropic-key", "", "Anthropic API key")
	f.StringVar(&initOpts.llm.OpenRouterAPIKey, "openrouter-key", "", "OpenRouter API key")
	f.StringVar(&initOpts.llm.GeminiAPIKey, "gemini-key", "", "Gemini API key")
	f.StringVar(&initOpts.llm.OllamaBaseURL, "ollama-url", "", "Ollama base url")
	f.StringVar(&initOpts.llm.CustomOpenAIBaseURL, "custom-url", "", "OpenAI-compatible base url")

	f.StringVar(&initOpts.retriever.Backend, "retriever", "http", "retriever backend: http or supabase")
	f.StringVar(&initOpts.retriever.URL, "retriever-url", "", "retriever service url")
	f.StringVar(&initOpts.retriever.SupabaseURL, "supabase-url", "", "Supabase project url")
	f.StringVar(&initOpts.retriever.SupabaseKey, "supabase-key", "", "Supabase service key")
	f.StringVar(&initOpts.retriever.EmbeddingAPIKey, "embedding-key", "", "API key for query embeddings")

	f.StringVar(&initOpts.telegram.Token, "telegram-token", "", "Telegram bot token")
	f.Int64SliceVar(&initOpts.telegram.AllowedChats, "telegram-chats", nil, "allowed Telegram chat ids")

	f.BoolVar(&initOpts.force, "force", false, "overwrite an existing .env")

	rootCmd.AddCommand(initCmd)
}
