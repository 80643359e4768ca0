package notification

import (
	"context"
	"fmt"

	"github.com/Navadeep1603/Campus-connect/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramRelay mirrors direct notifications to a user's Telegram chat.
// With an empty token the relay is disabled and every send is a no-op.
type TelegramRelay struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramRelay(token string, logger logger.Logger) (*TelegramRelay, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, relay disabled")
		return &TelegramRelay{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramRelay{bot: bot, logger: logger}, nil
}

func (r *TelegramRelay) Send(ctx context.Context, user *domain.User, text string) {
	if r.bot == nil {
		r.logger.Debug("telegram relay skipped (bot disabled)", logger.String("text", text))
		return
	}

	if user.TelegramChatID == nil {
		r.logger.Debug("telegram relay skipped (no chat_id)", logger.String("user_id", user.ID))
		return
	}

	if err := ctx.Err(); err != nil {
		r.logger.Debug("telegram relay skipped (context cancelled)",
			logger.Int64("chat_id", *user.TelegramChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*user.TelegramChatID, text)

	if _, err := r.bot.Send(msg); err != nil {
		r.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *user.TelegramChatID),
			logger.String("error", err.Error()),
		)
	}
}
