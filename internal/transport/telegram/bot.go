package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/service/agent"
	"github.com/sandevgo/docbot/pkg/conv"
	"github.com/sandevgo/docbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Answerer is the agent surface the bot needs.
type Answerer interface {
	Answer(ctx context.Context, sessionID, author, input string) (agent.Reply, error)
}

type Bot struct {
	bot    *tele.Bot
	cfg    *config.TelegramConfig
	agent  Answerer
	sender *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	agent Answerer,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		cfg:    cfg,
		agent:  agent,
		sender: newSender(b),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: only serve allow-listed chats
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Chat() == nil || !cfg.IsChatAllowed(c.Chat().ID) {
				return nil
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().
		Str("username", b.bot.Me.Username).
		Int("allowed_chats", len(b.cfg.AllowedChats)).
		Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	sessionID := sessionIDFor(c.Chat().ID)
	author := authorName(c.Sender())

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	reply, err := b.agent.Answer(ctx, sessionID, author, c.Text())
	if err != nil {
		logger.Error().Err(err).Str("session_id", sessionID).Msg("agent failed")
		return c.Send("Something went wrong, please try again later.")
	}

	if !shouldSend(reply, b.cfg.ReplyOnRefusal) {
		logger.Debug().
			Str("request_id", reply.RequestID).
			Bool("answered", reply.Answered).
			Bool("unanswered", reply.Unanswered).
			Msg("reply suppressed")
		return nil
	}

	return b.sender.sendAnswer(ctx, c.Chat(), c.Message(), formatReply(reply))
}

func sessionIDFor(chatID int64) string {
	return fmt.Sprintf("telegram-%d", chatID)
}

func authorName(u *tele.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// shouldSend keeps refusals quiet unless configured otherwise, so the bot
// does not spam a group with "I don't know".
func shouldSend(reply agent.Reply, replyOnRefusal bool) bool {
	if !reply.Answered || reply.Text == "" {
		return false
	}
	if reply.Unanswered && !reply.Command {
		return replyOnRefusal
	}
	return true
}

func formatReply(reply agent.Reply) string {
	if reply.Command || reply.Unanswered || len(reply.Sources) == 0 {
		return reply.Text
	}
	return reply.Text + "\n\n" + conv.LinksMarkdown("Sources", toLinks(reply.Sources))
}

func toLinks(sources []core.Source) []conv.Link {
	links := make([]conv.Link, 0, len(sources))
	for _, s := range sources {
		if s.URL == "" {
			continue
		}
		links = append(links, conv.Link{Title: s.Title, URL: s.URL})
	}
	return links
}
