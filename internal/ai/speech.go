package ai

import (
	"context"

	"github.com/evilgrin/evilgringpt/internal/domain"
)

type speechRequest struct {
	Input    string `json:"input"`
	Model    string `json:"model"`
	Language string `json:"language"`
}

type speechResponse struct {
	URL string `json:"url"`
}

// Synthesize converts text to speech with the given voice and returns the
// URL of the rendered audio.
func (c *Client) Synthesize(ctx context.Context, voice, text string) (string, error) {
	req := speechRequest{
		Input:    text,
		Model:    voice,
		Language: c.language,
	}

	var resp speechResponse
	if err := c.post(ctx, "/audio/speech", req, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", domain.ErrEmptyChoices
	}
	return resp.URL, nil
}
