package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/providers/llm"
	"github.com/sandevgo/docbot/internal/providers/rag"
	"github.com/sandevgo/docbot/internal/service/agent"
	"github.com/sandevgo/docbot/internal/service/brain"
	"github.com/sandevgo/docbot/internal/service/command"
	"github.com/sandevgo/docbot/internal/service/memory"
	"github.com/sandevgo/docbot/internal/storage/sqlite"
	"github.com/sandevgo/docbot/internal/transport/api"
	"github.com/sandevgo/docbot/internal/transport/telegram"
	"github.com/sandevgo/docbot/pkg/log"
	"github.com/sandevgo/docbot/pkg/srv"
)

// App holds the wired dependencies shared by every command.
type App struct {
	Config *config.AppConfig
	Agent  *agent.Agent
	db     *sql.DB
}

func NewApp(ctx context.Context) *App {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)
	retrieverCfg := config.NewRetrieverConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	messagesRepo := sqlite.NewMessagesRepo(db)
	unansweredRepo := sqlite.NewUnansweredRepo(db)

	// 3. Providers
	completer, err := llm.NewCompleter(ctx, llmCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	retriever, err := rag.NewRetriever(ctx, retrieverCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize retriever")
	}

	estimator := initEstimator(ctx, appCfg.TokenizerEncoding)

	// 4. Context assembly
	preamble, err := brain.LoadPreamble(appCfg.GetPromptPath())
	if err != nil {
		logger.Fatal().Err(err).Str("path", appCfg.GetPromptPath()).Msg("failed to load prompt")
	}
	b := brain.New(retriever, completer, estimator, brain.NewConfig(appCfg, preamble))

	// 5. Agent
	mem := memory.NewMemory(messagesRepo, appCfg.GetHistoryWindow())
	router := command.NewRouter(mem, unansweredRepo, command.Status{
		Provider:    llmCfg.Provider,
		Model:       llmCfg.Model,
		Retriever:   retrieverCfg.Backend,
		MemoryMode:  appCfg.MemoryMode,
		TokenBudget: appCfg.TokenBudget,
	}, appCfg.AdminSessions)
	ag := agent.NewAgent(
		b,
		brain.NewRefusalPolicy(appCfg.RefusalPhrases),
		mem,
		unansweredRepo,
		router,
	)

	logger.Debug().
		Str("memory_mode", appCfg.MemoryMode).
		Int("token_budget", appCfg.TokenBudget).
		Float64("threshold", appCfg.SimilarityThreshold).
		Msg("context assembly configured")

	return &App{
		Config: appCfg,
		Agent:  ag,
		db:     db,
	}
}

// Services returns the transports to run plus storage cleanup.
func (a *App) Services(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	var services []srv.Service

	if a.Config.EnableHTTP {
		services = append(services, api.NewServer(config.NewHTTPConfig(ctx), a.Agent))
	}

	if a.Config.EnableTelegram {
		bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), a.Agent)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram")
		}
		services = append(services, bot)
	}

	if len(services) == 0 {
		logger.Warn().Msg("no transports enabled, set ENABLE_HTTP or ENABLE_TELEGRAM")
	}

	// storage closes after transports stop
	return append(services, srv.NewCleanup(a.Close))
}

func (a *App) Close() error {
	return a.db.Close()
}

func initEstimator(ctx context.Context, encoding string) core.TokenEstimator {
	if encoding == "char" {
		return rag.CharEstimator{}
	}

	tok := rag.NewTokenizer(encoding)
	if err := tok.Load(); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).
			Str("encoding", encoding).
			Msg("failed to load tokenizer, set TOKENIZER_ENCODING=char to use the character estimate")
	}
	return tok
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
