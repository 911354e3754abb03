package config

import "time"

const (
	// AI request timeout; a stalled backend must not wedge a user's session.
	RequestTimeout = 90 * time.Second

	// Image generation defaults
	ImageCount = 4
	ImageSize  = "512x512"

	// Speech synthesis input limit
	SpeechMaxRunes = 50

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Vision: inline directive that asks for the reply as an attachment,
	// and the separator between an image URL and the question in text form.
	VisionFileDirective = ">>file"
	VisionSeparator     = "|"
	VisionResultName    = "result.txt"

	// Reply keyboard label that starts a new dialogue.
	StartPhrase = "Start Dialogue"
)
