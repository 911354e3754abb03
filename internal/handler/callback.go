package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/evilgrin/evilgringpt/internal/domain"
	"github.com/evilgrin/evilgringpt/internal/middleware"
)

// handleCallback turns a tapped inline button into a selection event. The
// router decides whether the token is still valid for the user's mode.
func (h *Handler) handleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
	})

	id := middleware.FromContext(ctx)
	if id == nil {
		return
	}

	messageID := 0
	if msg := update.CallbackQuery.Message.Message; msg != nil {
		messageID = msg.ID
	}

	h.dispatch(ctx, id.ChatID, messageID, domain.CallbackSelection{
		UserID: id.UserID,
		Token:  update.CallbackQuery.Data,
	})
}
