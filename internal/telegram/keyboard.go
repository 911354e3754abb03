package telegram

import (
	"github.com/go-telegram/bot/models"

	"github.com/evilgrin/evilgringpt/internal/domain"
)

// Markup renders an abstract keyboard into the platform's reply markup.
func Markup(kb *domain.Keyboard) models.ReplyMarkup {
	switch {
	case kb == nil:
		return nil
	case len(kb.Inline) > 0:
		rows := make([][]models.InlineKeyboardButton, len(kb.Inline))
		for i, row := range kb.Inline {
			buttons := make([]models.InlineKeyboardButton, len(row))
			for j, b := range row {
				buttons[j] = models.InlineKeyboardButton{
					Text:         b.Label,
					CallbackData: b.Token,
				}
			}
			rows[i] = buttons
		}
		return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
	case len(kb.Reply) > 0:
		buttons := make([]models.KeyboardButton, len(kb.Reply))
		for i, label := range kb.Reply {
			buttons[i] = models.KeyboardButton{Text: label}
		}
		return &models.ReplyKeyboardMarkup{
			Keyboard:       [][]models.KeyboardButton{buttons},
			ResizeKeyboard: true,
		}
	case kb.Remove:
		return &models.ReplyKeyboardRemove{RemoveKeyboard: true}
	default:
		return nil
	}
}
