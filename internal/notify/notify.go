package notify

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Notifier - отправка сообщений в чаты. Доставка не гарантируется:
// выплата никогда не откатывается из-за недоставленного уведомления.
type Notifier interface {
	Send(chatID int64, text string)
}

type telegramNotifier struct {
	bot *tgbotapi.BotAPI
	log *zap.Logger
}

// NewTelegramNotifier создает нотификатор поверх Bot API. Пустой токен
// дает заглушку, которая молча глотает сообщения.
func NewTelegramNotifier(token string, log *zap.Logger) (Notifier, error) {
	if token == "" {
		log.Info("telegram token is empty, notifications disabled")
		return NewNop(), nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &telegramNotifier{bot: bot, log: log}, nil
}

func (n *telegramNotifier) Send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := n.bot.Send(msg); err == nil {
		return
	}

	// Одна повторная попытка, дальше сообщение теряется.
	if _, err := n.bot.Send(msg); err != nil {
		n.log.Warn("notification dropped",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

type nopNotifier struct{}

func NewNop() Notifier {
	return nopNotifier{}
}

func (nopNotifier) Send(int64, string) {}
