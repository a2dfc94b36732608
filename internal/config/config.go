package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

// TelegramConfig - токен бота для отправки уведомлений.
// Пустой токен допустим: уведомления тогда не отправляются.
type TelegramConfig interface {
	Token() string
}
