package tgclient

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type client struct {
	bot *bot.Bot
}

func NewClient(bot *bot.Bot) *client {
	return &client{bot: bot}
}

// SendMessage posts a Markdown message without link previews.
func (c *client) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:             chatID,
		Text:               text,
		ParseMode:          models.ParseModeMarkdownV1,
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: bot.True()},
	})
	if err != nil {
		return fmt.Errorf("send telegram message to chat %d: %w", chatID, err)
	}

	return nil
}
