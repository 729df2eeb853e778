package telegram

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/docbot/pkg/conv"
	"github.com/sandevgo/docbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // below the 4096 hard limit

type sender struct {
	bot *tele.Bot
}

func newSender(bot *tele.Bot) *sender {
	return &sender{bot: bot}
}

// sendAnswer renders md as Telegram HTML and sends it in chunks. The first
// chunk replies to the question when replyTo is set. A chunk Telegram
// rejects as HTML is retried as plain text.
func (s *sender) sendAnswer(ctx context.Context, to tele.Recipient, replyTo *tele.Message, md string) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	for i, chunk := range splitHTML(html, maxTelegramMsgLen) {
		opts := &tele.SendOptions{ParseMode: tele.ModeHTML, DisableWebPagePreview: true}
		if i == 0 && replyTo != nil {
			opts.ReplyTo = replyTo
		}

		_, err := s.bot.Send(to, chunk, opts)
		if err == nil {
			continue
		}

		logger.Warn().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("html chunk rejected, retrying as plain text")
		opts.ParseMode = tele.ModeDefault
		if _, err := s.bot.Send(to, plainText(chunk), opts); err != nil {
			logger.Error().Err(err).Int("chunk", i).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

func plainText(html string) string {
	text, err := html2text.FromString(html, html2text.Options{})
	if err != nil {
		return html
	}
	return text
}

// splitHTML cuts text into chunks of at most maxLen bytes, preferring a
// newline in the last two thirds of each chunk and never splitting a rune.
func splitHTML(text string, maxLen int) []string {
	var chunks []string
	for len(text) > maxLen {
		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		} else {
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			if cut == 0 {
				_, cut = utf8.DecodeRuneInString(text)
			}
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
