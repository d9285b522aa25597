package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotConfigured is returned when no API key is set; the handler maps
// it to a 500 without leaking configuration details.
var ErrNotConfigured = errors.New("openrouter: api key not configured")

const systemPrompt = "You are a short, fast HR assistant. ALWAYS respond in 1-3 short sentences maximum. " +
	"Keep answers crisp, easy, and to the point. After every reply, add this line: " +
	"'If you want, I can explain this in detail.' Only give long answers when user says: 'Explain in detail'."

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		model:      strings.TrimSpace(model),
		httpClient: httpClient,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat sends a single user message through the chat-completions API and
// returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, userMessage string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}
	payload := chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send chat request: %w", err)
	}
	defer resp.Body.Close()
	payloadBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var parsed errorResponse
		if err := json.Unmarshal(payloadBytes, &parsed); err == nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("chat api error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("chat api error: status %d", resp.StatusCode)
	}
	var parsed chatResponse
	if err := json.Unmarshal(payloadBytes, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("chat api returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
