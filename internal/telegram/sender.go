package telegram

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/evilgrin/evilgringpt/internal/config"
)

// SendLongMessage sends a potentially long text, splitting it into parts at
// the platform limit. The keyboard, if any, rides on the last part. Parts go
// out as Markdown first and fall back to plain text when Telegram rejects
// the markup.
func SendLongMessage(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) error {
	parts := SplitMessage(FixMarkdown(text), config.MaxTelegramMessageLen)

	for i, part := range parts {
		params := &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      part,
			ParseMode: models.ParseModeMarkdownV1,
		}
		if markup != nil && i == len(parts)-1 {
			params.ReplyMarkup = markup
		}
		if _, err := b.SendMessage(ctx, params); err != nil {
			slog.Warn("markdown send failed, falling back to plain text", "error", err)
			params.ParseMode = ""
			if _, err := b.SendMessage(ctx, params); err != nil {
				return fmt.Errorf("send message: %w", err)
			}
		}
	}
	return nil
}

// EditMessage replaces a previously sent message's text, with the same
// markdown-then-plain fallback as SendLongMessage.
func EditMessage(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string) error {
	text = FixMarkdown(text)
	if len([]rune(text)) > config.MaxTelegramMessageLen {
		text = string([]rune(text)[:config.MaxTelegramMessageLen-3]) + "..."
	}
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		_, err = b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: messageID,
			Text:      text,
		})
	}
	return err
}

// SendPhotoURL sends a photo the backend already hosts.
func SendPhotoURL(ctx context.Context, b *bot.Bot, chatID int64, url string) error {
	_, err := b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: chatID,
		Photo:  &models.InputFileString{Data: url},
	})
	return err
}

// SendAudioURL sends an audio file the backend already hosts.
func SendAudioURL(ctx context.Context, b *bot.Bot, chatID int64, url, title string) error {
	_, err := b.SendAudio(ctx, &bot.SendAudioParams{
		ChatID: chatID,
		Audio:  &models.InputFileString{Data: url},
		Title:  title,
	})
	return err
}

// SendDocument sends raw bytes as a downloadable file.
func SendDocument(ctx context.Context, b *bot.Bot, chatID int64, filename string, data []byte) error {
	_, err := b.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID: chatID,
		Document: &models.InputFileUpload{
			Filename: filename,
			Data:     bytes.NewReader(data),
		},
	})
	return err
}

// StartTyping sends the typing action every 4 seconds until the returned
// cancel function is called.
func StartTyping(ctx context.Context, b *bot.Bot, chatID int64) context.CancelFunc {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(4 * time.Second)
		defer ticker.Stop()
		b.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: models.ChatActionTyping,
		})
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.SendChatAction(ctx, &bot.SendChatActionParams{
					ChatID: chatID,
					Action: models.ChatActionTyping,
				})
			}
		}
	}()
	return cancel
}
