package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Logging returns middleware that logs every processed update with its kind
// and timing.
func Logging() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			start := time.Now()

			kind := "unknown"
			var userID int64

			switch {
			case update.Message != nil:
				kind = "message"
				if update.Message.Photo != nil {
					kind = "photo"
				}
				if update.Message.From != nil {
					userID = update.Message.From.ID
				}
			case update.CallbackQuery != nil:
				kind = "callback"
				userID = update.CallbackQuery.From.ID
			}

			next(ctx, b, update)

			slog.Debug("update processed",
				"kind", kind,
				"user_id", userID,
				"duration", time.Since(start),
			)
		}
	}
}
