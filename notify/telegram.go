package notify

import (
	"fmt"

	"cafe-admin/ui"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Telegram pushes one-way order notifications to the admin chat. It
// never reads updates; failures are logged and swallowed so a flaky
// bot can't break order entry.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *zap.Logger
}

func NewTelegram(token string, chatID int64, log *zap.Logger) (*Telegram, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is empty")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("admin chat id is not set")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{api: api, chatID: chatID, log: log}, nil
}

func (t *Telegram) OrderCreated(orderID int64, customer, item string, qty int, total int64) {
	text := fmt.Sprintf(
		"سفارش جدید #%d\n%s — %s × %d\nمبلغ: %s تومان",
		orderID, customer, item, qty, ui.FormatMoney(total),
	)
	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		t.log.Warn("order notification failed",
			zap.Int64("order", orderID),
			zap.Error(err),
		)
	}
}
