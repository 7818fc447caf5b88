package notify

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewInfra wires the operator's telegram bot from TELEGRAM_BOT_TOKEN
// and TELEGRAM_CHAT_ID. Both empty means notifications are off.
func NewInfra() (*Infra, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chat := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chat == "" {
		return &Infra{}, nil
	}

	chatID, err := strconv.ParseInt(chat, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}

	return &Infra{bot: bot, chatID: chatID}, nil
}

func (i *Infra) Notify(ctx context.Context, op string, err error, details string) error {
	if i.bot == nil {
		log.Printf("[notify] %s: %v (%s)", op, err, details)
		return nil
	}

	text := fmt.Sprintf("voice-replay: %s failed\n\nerror: %v\n\ndetails: %s", op, err, details)

	msg := tgbotapi.NewMessage(i.chatID, text)
	if _, sendErr := i.bot.Send(msg); sendErr != nil {
		log.Printf("[notify] send fail: %v", sendErr)
		return sendErr
	}
	return nil
}
