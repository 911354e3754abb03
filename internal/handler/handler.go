// Package handler adapts Telegram updates into router events and router
// actions back into Telegram calls. No session logic lives here.
package handler

import (
	"github.com/go-telegram/bot"

	"github.com/evilgrin/evilgringpt/internal/imagehost"
	"github.com/evilgrin/evilgringpt/internal/router"
	"github.com/evilgrin/evilgringpt/internal/session"
)

type Handler struct {
	bot      *bot.Bot
	store    *session.Store
	router   *router.Router
	uploader *imagehost.Uploader
}

// Deps contains everything required to construct a Handler.
type Deps struct {
	Bot      *bot.Bot
	Store    *session.Store
	Router   *router.Router
	Uploader *imagehost.Uploader
}

func New(deps Deps) *Handler {
	return &Handler{
		bot:      deps.Bot,
		store:    deps.Store,
		router:   deps.Router,
		uploader: deps.Uploader,
	}
}
