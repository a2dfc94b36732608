package env

import (
	"casino_bot/internal/config"
	"os"
)

const (
	tgTokenName = "TG_BOT_TOKEN"
)

type telegramConfig struct {
	token string
}

// NewTelegramConfig не требует наличия токена: без него бот работает,
// но уведомления не уходят.
func NewTelegramConfig() (config.TelegramConfig, error) {
	return &telegramConfig{
		token: os.Getenv(tgTokenName),
	}, nil
}

func (cfg *telegramConfig) Token() string {
	return cfg.token
}
