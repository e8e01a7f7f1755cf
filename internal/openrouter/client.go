// Package openrouter implements the remote caller against the OpenRouter
// chat-completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/satzlabs/satzgen/internal/ports"
)

const completionsEndpoint = "/chat/completions"

// Config holds everything the client needs for one completion call.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// APIKey is sent as a bearer token.
	APIKey string

	// Referer is sent in the HTTP-Referer header, as OpenRouter requests.
	Referer string

	Model        string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

// Client implements ports.Completer over HTTP.
// It performs exactly one round trip per call; retries belong to the
// scheduler.
type Client struct {
	config Config
	client ports.HTTPClient
}

// NewClient creates a new OpenRouter client. The HTTP client owns the
// per-call timeout.
func NewClient(config Config, client ports.HTTPClient) *Client {
	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	return &Client{config: config, client: client}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Stream      bool      `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// StatusError is returned for non-2xx responses. It carries the HTTP status
// code and whatever error message the server body contained.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Complete sends the prompt together with the configured system prompt and
// returns the raw content of the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.config.Model,
		Messages: []message{
			{Role: "system", Content: c.config.SystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.config.BaseURL + completionsEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("HTTP-Referer", c.config.Referer)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			Message:    decodeErrorBody(resp.Body),
		}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("response has no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// decodeErrorBody pulls a human-readable message out of an error response.
// Falls back to the raw body when it is not the usual JSON envelope.
func decodeErrorBody(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	return strings.TrimSpace(string(raw))
}
