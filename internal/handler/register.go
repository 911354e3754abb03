package handler

import (
	"github.com/go-telegram/bot"

	"github.com/evilgrin/evilgringpt/internal/router"
)

// Register registers the command and callback handlers on the bot instance.
// Plain text and photo messages arrive through the default handler wired in
// main.
func (h *Handler) Register() {
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)

	for _, prefix := range router.TokenPrefixes() {
		h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, prefix, bot.MatchTypePrefix, h.handleCallback)
	}
}
