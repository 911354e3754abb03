package handler

import (
	"context"
	"log/slog"

	"github.com/evilgrin/evilgringpt/internal/domain"
	tg "github.com/evilgrin/evilgringpt/internal/telegram"
)

// dispatch runs one event through the router under the user's session lock,
// then executes the resulting actions. The lock covers the capability call
// so session mutations for one user are strictly in arrival order; the
// outbound sends happen after the lock is released and may interleave with
// a queued-up later event's sends.
func (h *Handler) dispatch(ctx context.Context, chatID int64, lastMessageID int, ev domain.Event) {
	var actions []domain.Action
	h.store.Update(ev.EventUserID(), func(s *domain.Session) {
		actions = h.router.Handle(ctx, ev, s)
	})
	h.execute(ctx, chatID, lastMessageID, actions)
}

func (h *Handler) execute(ctx context.Context, chatID int64, lastMessageID int, actions []domain.Action) {
	for _, a := range actions {
		var err error
		switch a := a.(type) {
		case domain.SendText:
			err = tg.SendLongMessage(ctx, h.bot, chatID, a.Text, tg.Markup(a.Keyboard))
		case domain.SendPhoto:
			err = tg.SendPhotoURL(ctx, h.bot, chatID, a.URL)
		case domain.SendAudio:
			err = tg.SendAudioURL(ctx, h.bot, chatID, a.URL, a.Title)
		case domain.SendDocument:
			err = tg.SendDocument(ctx, h.bot, chatID, a.Filename, a.Data)
		case domain.EditLastMessage:
			if lastMessageID != 0 {
				err = tg.EditMessage(ctx, h.bot, chatID, lastMessageID, a.Text)
			} else {
				err = tg.SendLongMessage(ctx, h.bot, chatID, a.Text, nil)
			}
		}
		if err != nil {
			slog.Error("execute action failed", "chat_id", chatID, "error", err)
		}
	}
}
