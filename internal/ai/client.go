// Package ai holds thin request/response facades over the remote generative
// backends: chat completion, image generation, speech synthesis and vision.
// Each call is one HTTP round trip; nothing is retried here. Failures are
// reported as domain.TransportError (network, timeout) or
// domain.BackendError (non-2xx response) and the retry policy, if any,
// belongs to the caller.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/evilgrin/evilgringpt/internal/config"
	"github.com/evilgrin/evilgringpt/internal/domain"
)

type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		apiKey:     cfg.AIAPIKey,
		baseURL:    strings.TrimSuffix(cfg.AIBaseURL, "/"),
		language:   cfg.SpeechLanguage,
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

// post sends payload to path and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.TransportError{Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.BackendError{
			Status:  resp.StatusCode,
			Message: backendMessage(data),
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// backendMessage extracts a human-readable message from an error body,
// falling back to the raw body truncated to one line.
func backendMessage(body []byte) string {
	var wrapped struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if wrapped.Error.Message != "" {
			return wrapped.Error.Message
		}
		if wrapped.Detail != "" {
			return wrapped.Detail
		}
	}

	msg := strings.TrimSpace(string(body))
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	if utf8.RuneCountInString(msg) > 200 {
		msg = string([]rune(msg)[:200]) + "..."
	}
	if msg == "" {
		msg = "no error detail"
	}
	return msg
}
