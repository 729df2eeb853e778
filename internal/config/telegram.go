package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/docbot/pkg/log"
)

type TelegramConfig struct {
	Token          string  `env:"TELEGRAM_TOKEN,required,notEmpty"`
	AllowedChats   []int64 `env:"TELEGRAM_ALLOWED_CHATS"`
	ReplyOnRefusal bool    `env:"TELEGRAM_REPLY_ON_REFUSAL" envDefault:"false"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

func (c TelegramConfig) IsChatAllowed(chatID int64) bool {
	if len(c.AllowedChats) == 0 {
		return true
	}
	for _, id := range c.AllowedChats {
		if id == chatID {
			return true
		}
	}
	return false
}
