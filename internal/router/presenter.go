package router

import (
	"github.com/evilgrin/evilgringpt/internal/config"
	"github.com/evilgrin/evilgringpt/internal/domain"
)

// capabilityMenu builds the model/capability selection message: one button
// row per chat model, then one entry per image model, voice and vision
// model. Pure intent-to-payload translation; the transport renders it.
func (r *Router) capabilityMenu() domain.Action {
	var rows [][]domain.Button

	for _, m := range r.catalog.ChatModels {
		rows = append(rows, []domain.Button{{Label: m, Token: tokenChat + m}})
	}
	for _, m := range r.catalog.ImageModels {
		rows = append(rows, []domain.Button{{Label: "Create Image (" + m + ")", Token: tokenImage + m}})
	}
	for _, v := range r.catalog.Voices {
		rows = append(rows, []domain.Button{{Label: "Text-to-Speech (" + v + ")", Token: tokenVoice + v}})
	}
	for _, m := range r.catalog.VisionModels {
		rows = append(rows, []domain.Button{{Label: "Vision (" + m + ")", Token: tokenVision + m}})
	}

	return domain.SendText{
		Text:     `Please select a model or click "Create Image", "Text-to-Speech" or "Vision":`,
		Keyboard: &domain.Keyboard{Inline: rows},
	}
}

// startKeyboard is the reply keyboard offered after a dialogue ends.
func startKeyboard() *domain.Keyboard {
	return &domain.Keyboard{Reply: []string{config.StartPhrase}}
}
