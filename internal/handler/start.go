package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/evilgrin/evilgringpt/internal/domain"
	"github.com/evilgrin/evilgringpt/internal/middleware"
	tg "github.com/evilgrin/evilgringpt/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	id := middleware.FromContext(ctx)
	if id == nil {
		return
	}

	// Greeting only on a fresh session; an active one gets the router's
	// "complete the ongoing conversation first" reply instead.
	if s := h.store.GetOrCreate(id.UserID); !s.Mode.Active() {
		greeting := fmt.Sprintf("Hello, %s! I'm EvilgrinGPT created by evilgrin.", id.FirstName)
		tg.SendLongMessage(ctx, b, id.ChatID, greeting, nil)
	}

	h.dispatch(ctx, id.ChatID, 0, domain.TextMessage{
		UserID: id.UserID,
		Text:   update.Message.Text,
	})
}
