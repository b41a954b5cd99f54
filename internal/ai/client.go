// Package ai is a minimal client for the OpenAI-compatible completion and
// transcription endpoints. The server treats these as a passthrough: it
// forwards a prompt, stores the text that comes back, and surfaces any
// failure as a generic upstream error.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/lookate/backend/internal/models"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Message is one turn of a chat completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client calls the completion API with a fixed key.
type Client struct {
	// BaseURL is the API root, overridable in tests.
	BaseURL string

	key  string
	http *http.Client
}

// New constructs a Client with a 60s request timeout; completions on large
// prompts routinely take tens of seconds.
func New(key string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		key:     key,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

type completionRequest struct {
	Model       string  `json:"model"`
	Messages    []any   `json:"messages"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends the conversation to the given model and returns the
// first choice's text.
func (c *Client) ChatCompletion(ctx context.Context, model string, messages []Message, maxTokens int, temperature float64) (string, error) {
	payload := completionRequest{Model: model, MaxTokens: maxTokens, Temperature: temperature}
	for _, m := range messages {
		payload.Messages = append(payload.Messages, m)
	}
	return c.complete(ctx, payload)
}

// VisionCompletion sends one user turn containing a text prompt plus a
// base64-encoded JPEG image and returns the first choice's text.
func (c *Client) VisionCompletion(ctx context.Context, model, prompt, imageB64 string) (string, error) {
	payload := completionRequest{
		Model:     model,
		MaxTokens: 500,
		Messages: []any{
			map[string]any{
				"role": "user",
				"content": []any{
					map[string]any{"type": "text", "text": prompt},
					map[string]any{
						"type":      "image_url",
						"image_url": map[string]string{"url": "data:image/jpeg;base64," + imageB64},
					},
				},
			},
		},
	}
	return c.complete(ctx, payload)
}

func (c *Client) complete(ctx context.Context, payload completionRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion: %w: %w", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion status %d: %w", resp.StatusCode, models.ErrUpstream)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode completion: %w: %w", models.ErrUpstream, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices: %w", models.ErrUpstream)
	}
	return out.Choices[0].Message.Content, nil
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads an audio file to the transcription endpoint and
// returns the transcript text.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build transcription form: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("copy audio: %w", err)
	}
	if err := form.WriteField("model", "whisper-1"); err != nil {
		return "", fmt.Errorf("build transcription form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("build transcription form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription: %w: %w", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription status %d: %w", resp.StatusCode, models.ErrUpstream)
	}

	var out transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode transcription: %w: %w", models.ErrUpstream, err)
	}
	return out.Text, nil
}
