package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/docbot/pkg/log"
)

// Memory modes control how conversation history is turned into context.
const (
	MemoryModeFold      = "fold"
	MemoryModeFoldFresh = "fold_fresh"
	MemoryModeStateless = "stateless"
)

type AppConfig struct {
	RuntimePath string `env:"DOCBOT_RUNTIME_PATH" envDefault:".docbot"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableHTTP     bool `env:"ENABLE_HTTP" envDefault:"true"`

	// Context Assembly
	TokenBudget          int      `env:"TOKEN_BUDGET" envDefault:"4096"`
	SimilarityThreshold  float64  `env:"SIMILARITY_THRESHOLD" envDefault:"0.78"`
	RetrievalLimit       int      `env:"RETRIEVAL_LIMIT" envDefault:"20"`
	MemoryRetrievalLimit int      `env:"MEMORY_RETRIEVAL_LIMIT" envDefault:"7"`
	MemoryMode           string   `env:"MEMORY_MODE" envDefault:"fold"`
	RefusalPhrases       []string `env:"REFUSAL_PHRASES" envSeparator:"|" envDefault:"I don't know|Sorry"`
	TokenizerEncoding    string   `env:"TOKENIZER_ENCODING" envDefault:"cl100k_base"`

	// Conversation Management
	HistoryWindow int `env:"HISTORY_WINDOW" envDefault:"30"`

	// Sessions allowed to list unanswered questions of every session,
	// e.g. "telegram-123456".
	AdminSessions []string `env:"ADMIN_SESSIONS"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetPromptPath() string {
	return filepath.Join(c.RuntimePath, "prompt.yaml")
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "docbot.db")
}

func (c AppConfig) GetHistoryWindow() int {
	return c.HistoryWindow
}
