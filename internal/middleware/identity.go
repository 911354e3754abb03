package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is the platform-assigned user identity of the update's sender.
type Identity struct {
	UserID    int64
	ChatID    int64
	FirstName string
}

// FromContext extracts the sender identity, or nil for updates without one.
func FromContext(ctx context.Context) *Identity {
	id, ok := ctx.Value(identityKey).(*Identity)
	if !ok {
		return nil
	}
	return id
}

// WithIdentity returns middleware that resolves the sender of each update
// into the context. Updates without a sender pass through unchanged.
func WithIdentity() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var from *models.User
			var chatID int64

			switch {
			case update.Message != nil:
				from = update.Message.From
				chatID = update.Message.Chat.ID
			case update.CallbackQuery != nil:
				from = &update.CallbackQuery.From
				if msg := update.CallbackQuery.Message.Message; msg != nil {
					chatID = msg.Chat.ID
				}
			}

			if from != nil {
				ctx = context.WithValue(ctx, identityKey, &Identity{
					UserID:    from.ID,
					ChatID:    chatID,
					FirstName: from.FirstName,
				})
			}
			next(ctx, b, update)
		}
	}
}
