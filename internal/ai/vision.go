package ai

import (
	"context"

	"github.com/evilgrin/evilgringpt/internal/domain"
)

// Describe sends the conversation history, including image references, to a
// vision-capable model and returns its reply. Entries with an ImageURL are
// encoded as multi-part content with an image_url part.
func (c *Client) Describe(ctx context.Context, model string, history []domain.ChatMessage) (string, error) {
	req := chatRequest{
		Model:    model,
		Messages: visionMessages(history),
	}

	var resp chatResponse
	if err := c.post(ctx, "/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", domain.ErrEmptyChoices
	}
	return resp.Choices[0].Message.Content, nil
}

func visionMessages(history []domain.ChatMessage) []chatMessage {
	msgs := make([]chatMessage, len(history))
	for i, m := range history {
		if m.ImageURL == "" {
			msgs[i] = chatMessage{Role: m.Role, Content: m.Content}
			continue
		}
		msgs[i] = chatMessage{
			Role: m.Role,
			Content: []any{
				map[string]any{"type": "text", "text": m.Content},
				map[string]any{"type": "image_url", "image_url": map[string]string{"url": m.ImageURL}},
			},
		}
	}
	return msgs
}
