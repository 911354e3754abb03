package ai

import (
	"context"

	"github.com/evilgrin/evilgringpt/internal/config"
	"github.com/evilgrin/evilgringpt/internal/domain"
)

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Generate asks the image backend for config.ImageCount renderings of the
// prompt and returns their URLs.
func (c *Client) Generate(ctx context.Context, model, prompt string) ([]string, error) {
	req := imageRequest{
		Model:  model,
		Prompt: prompt,
		N:      config.ImageCount,
		Size:   config.ImageSize,
	}

	var resp imageResponse
	if err := c.post(ctx, "/images/generations", req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, domain.ErrEmptyChoices
	}

	urls := make([]string, len(resp.Data))
	for i, d := range resp.Data {
		urls[i] = d.URL
	}
	return urls, nil
}
