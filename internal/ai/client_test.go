package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evilgrin/evilgringpt/internal/config"
	"github.com/evilgrin/evilgringpt/internal/domain"
)

func testClient(baseURL string) *Client {
	return New(&config.Config{
		AIAPIKey:       "test-key",
		AIBaseURL:      baseURL,
		SpeechLanguage: "en",
	})
}

func TestCompleteSendsHistoryAndParsesReply(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"gpt-4","choices":[{"message":{"content":"hi there"}}]}`))
	}))
	defer srv.Close()

	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "hello"},
		{Role: domain.RoleAssistant, Content: "hi"},
		{Role: domain.RoleUser, Content: "how are you"},
	}
	reply, err := testClient(srv.URL).Complete(context.Background(), "gpt-4", history)

	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)
	assert.Equal(t, "gpt-4", got.Model)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "hello", got.Messages[0].Content)
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), "gpt-4", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyChoices)
}

func TestBackendErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"openai shape", 429, `{"error":{"message":"rate limited"}}`, "rate limited"},
		{"detail shape", 422, `{"detail":"bad model"}`, "bad model"},
		{"plain text", 500, "internal failure\nstack trace", "internal failure"},
		{"empty body", 502, "", "no error detail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := testClient(srv.URL).Complete(context.Background(), "gpt-4", nil)

			var backendErr *domain.BackendError
			require.True(t, errors.As(err, &backendErr))
			assert.Equal(t, tc.status, backendErr.Status)
			assert.Equal(t, tc.message, backendErr.Message)
		})
	}
}

func TestTransportErrorOnConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := testClient(srv.URL).Complete(context.Background(), "gpt-4", nil)

	var transportErr *domain.TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestGenerateRequestsFourImages(t *testing.T) {
	var got imageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/generations", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"data":[{"url":"https://img/1.png"},{"url":"https://img/2.png"}]}`))
	}))
	defer srv.Close()

	urls, err := testClient(srv.URL).Generate(context.Background(), "dall-e", "a red fox")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/1.png", "https://img/2.png"}, urls)
	assert.Equal(t, "dall-e", got.Model)
	assert.Equal(t, "a red fox", got.Prompt)
	assert.Equal(t, config.ImageCount, got.N)
	assert.Equal(t, config.ImageSize, got.Size)
}

func TestGenerateEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "dall-e", "a fox")
	assert.ErrorIs(t, err, domain.ErrEmptyChoices)
}

func TestSynthesize(t *testing.T) {
	var got speechRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/speech", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"url":"https://audio/1.mp3"}`))
	}))
	defer srv.Close()

	url, err := testClient(srv.URL).Synthesize(context.Background(), "voice-paimon", "hello world")

	require.NoError(t, err)
	assert.Equal(t, "https://audio/1.mp3", url)
	assert.Equal(t, "hello world", got.Input)
	assert.Equal(t, "voice-paimon", got.Model)
	assert.Equal(t, "en", got.Language)
}

func TestSynthesizeMissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Synthesize(context.Background(), "voice-paimon", "hello")
	assert.ErrorIs(t, err, domain.ErrEmptyChoices)
}

func TestDescribeEncodesImageParts(t *testing.T) {
	var raw struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.Write([]byte(`{"choices":[{"message":{"content":"a red fox"}}]}`))
	}))
	defer srv.Close()

	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "what is this", ImageURL: "https://pics/fox.png"},
		{Role: domain.RoleAssistant, Content: "a red fox"},
	}
	reply, err := testClient(srv.URL).Describe(context.Background(), "idefics-80b", history)

	require.NoError(t, err)
	assert.Equal(t, "a red fox", reply)
	require.Len(t, raw.Messages, 2)

	// The image turn carries a multi-part content array.
	var parts []map[string]any
	require.NoError(t, json.Unmarshal(raw.Messages[0].Content, &parts))
	require.Len(t, parts, 2)
	assert.Equal(t, "text", parts[0]["type"])
	assert.Equal(t, "what is this", parts[0]["text"])
	assert.Equal(t, "image_url", parts[1]["type"])

	// The plain turn stays a bare string.
	var plain string
	require.NoError(t, json.Unmarshal(raw.Messages[1].Content, &plain))
	assert.Equal(t, "a red fox", plain)
}
