// Package imagehost re-hosts user photos on a public image host so vision
// backends that cannot fetch Telegram file URLs still get a usable link.
package imagehost

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/evilgrin/evilgringpt/internal/domain"
)

const uploadTimeout = 30 * time.Second

type Uploader struct {
	key        string
	endpoint   string
	httpClient *http.Client
}

func New(key, endpoint string) *Uploader {
	return &Uploader{
		key:        key,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: uploadTimeout},
	}
}

// Enabled reports whether an API key is configured. When disabled, callers
// pass the Telegram file URL straight to the backend.
func (u *Uploader) Enabled() bool {
	return u != nil && u.key != ""
}

// Upload pushes image bytes to the host and returns the public URL.
func (u *Uploader) Upload(ctx context.Context, data []byte) (string, error) {
	form := url.Values{}
	form.Set("key", u.key)
	form.Set("image", base64.StdEncoding.EncodeToString(data))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", &domain.TransportError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.TransportError{Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &domain.BackendError{Status: resp.StatusCode, Message: "image upload failed"}
	}

	var result struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse upload response: %w", err)
	}
	if result.Data.URL == "" {
		return "", fmt.Errorf("upload response has no url")
	}
	return result.Data.URL, nil
}
