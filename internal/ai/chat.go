package ai

import (
	"context"
	"log/slog"

	"github.com/evilgrin/evilgringpt/internal/domain"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the full conversation history to the chat completion
// endpoint and returns the assistant's reply.
func (c *Client) Complete(ctx context.Context, model string, history []domain.ChatMessage) (string, error) {
	req := chatRequest{
		Model:    model,
		Messages: plainMessages(history),
	}

	var resp chatResponse
	if err := c.post(ctx, "/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", domain.ErrEmptyChoices
	}

	slog.Debug("chat completion",
		"model", resp.Model,
		"messages", len(req.Messages),
	)
	return resp.Choices[0].Message.Content, nil
}

// plainMessages converts history to wire messages, dropping image
// references. Chat models only see text.
func plainMessages(history []domain.ChatMessage) []chatMessage {
	msgs := make([]chatMessage, len(history))
	for i, m := range history {
		msgs[i] = chatMessage{Role: m.Role, Content: m.Content}
	}
	return msgs
}
