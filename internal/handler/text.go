package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/evilgrin/evilgringpt/internal/domain"
	"github.com/evilgrin/evilgringpt/internal/middleware"
	tg "github.com/evilgrin/evilgringpt/internal/telegram"
)

// HandleText processes plain private text messages. Photos are routed to
// HandlePhoto in main's default handler.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	// Commands other than /start are not part of the dialogue.
	if strings.HasPrefix(update.Message.Text, "/") && !strings.HasPrefix(update.Message.Text, "/start") {
		return
	}

	id := middleware.FromContext(ctx)
	if id == nil {
		return
	}

	stopTyping := tg.StartTyping(ctx, b, id.ChatID)
	defer stopTyping()

	h.dispatch(ctx, id.ChatID, 0, domain.TextMessage{
		UserID: id.UserID,
		Text:   update.Message.Text,
	})
}
