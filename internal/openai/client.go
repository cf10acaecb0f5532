// Package openai is a minimal client for OpenAI-compatible chat-completion
// endpoints.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/ayoisaiah/compass/internal/apperr"
	"github.com/ayoisaiah/compass/internal/models"
)

const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-3.5-turbo"
	DefaultMaxTokens   = 150
	DefaultTemperature = 0.7

	completionsPath = "/chat/completions"
)

var (
	errRequest = &apperr.Error{
		Message: "completion request failed",
		Kind:    apperr.RemoteService,
	}

	errStatus = &apperr.Error{
		Message: "completion API returned %s",
		Kind:    apperr.RemoteService,
	}

	errNoChoices = &apperr.Error{
		Message: "completion API returned no choices",
		Kind:    apperr.RemoteService,
	}

	errDecode = &apperr.Error{
		Message: "unable to decode completion response",
		Kind:    apperr.RemoteService,
	}
)

// Message is a single chat-completion message.
type Message struct {
	Role    models.Role `json:"role"`
	Content string      `json:"content"`
}

// Request is the body sent to the chat-completions endpoint.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type response struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API root, e.g. for a local compatible server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithModel overrides the default model name.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger for request tracing.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// Client talks to an OpenAI-compatible chat-completions endpoint. It holds
// no per-request state and is safe for concurrent use.
type Client struct {
	http        *http.Client
	log         *slog.Logger
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
}

// NewClient creates a chat client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http:        http.DefaultClient,
		log:         slog.Default(),
		baseURL:     DefaultBaseURL,
		model:       DefaultModel,
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// NewRequest builds a request for messages with the client's settings.
func (c *Client) NewRequest(messages []Message) Request {
	return Request{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}
}

// Complete sends messages and returns the content of the first choice.
// Every failure is a RemoteService error.
func (c *Client) Complete(
	ctx context.Context,
	apiKey string,
	messages []Message,
) (string, error) {
	body, err := json.Marshal(c.NewRequest(messages))
	if err != nil {
		return "", errRequest.Wrap(err)
	}

	endpoint := c.baseURL + completionsPath

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		bytes.NewReader(body),
	)
	if err != nil {
		return "", errRequest.Wrap(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	c.log.DebugContext(
		ctx,
		"sending completion request",
		slog.String("endpoint", endpoint),
		slog.Int("messages", len(messages)),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errRequest.Wrap(err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errRequest.Wrap(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errStatus.Fmt(resp.Status).Wrap(
			fmt.Errorf("%s", truncate(string(respBody), 200)),
		)
	}

	var result response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", errDecode.Wrap(err)
	}

	if len(result.Choices) == 0 {
		return "", errNoChoices
	}

	return result.Choices[0].Message.Content, nil
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "..."
}
