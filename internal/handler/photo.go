package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/evilgrin/evilgringpt/internal/domain"
	"github.com/evilgrin/evilgringpt/internal/middleware"
	tg "github.com/evilgrin/evilgringpt/internal/telegram"
)

// HandlePhoto resolves an uploaded photo into a public URL and hands it to
// the router. With an image host configured the photo is re-hosted so the
// vision backend does not depend on Telegram's file URLs.
func (h *Handler) HandlePhoto(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" || len(update.Message.Photo) == 0 {
		return
	}

	id := middleware.FromContext(ctx)
	if id == nil {
		return
	}

	// Highest resolution variant comes last.
	photo := update.Message.Photo[len(update.Message.Photo)-1]

	imageURL, err := h.resolvePhoto(ctx, b, photo.FileID)
	if err != nil {
		slog.Error("resolve photo", "user_id", id.UserID, "error", err)
		tg.SendLongMessage(ctx, b, id.ChatID, "Could not read the photo. Please try again.", nil)
		return
	}

	stopTyping := tg.StartTyping(ctx, b, id.ChatID)
	defer stopTyping()

	h.dispatch(ctx, id.ChatID, 0, domain.PhotoMessage{
		UserID:   id.UserID,
		ImageURL: imageURL,
		Caption:  update.Message.Caption,
	})
}

func (h *Handler) resolvePhoto(ctx context.Context, b *bot.Bot, fileID string) (string, error) {
	if !h.uploader.Enabled() {
		return tg.GetFileURL(ctx, b, fileID)
	}

	data, err := tg.DownloadFile(ctx, b, fileID)
	if err != nil {
		return "", err
	}
	url, err := h.uploader.Upload(ctx, data)
	if err != nil {
		// Fall back to the Telegram URL rather than dropping the turn.
		slog.Warn("image re-host failed, using telegram url", "error", err)
		return tg.GetFileURL(ctx, b, fileID)
	}
	return url, nil
}
