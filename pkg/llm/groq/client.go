package groq

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.3-70b-versatile"
)

// Error is the single error kind returned by Client. It keeps the cause for
// errors.Is/As.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "groq api error: " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// ErrEmptyCompletion is wrapped when the model replies without usable text.
var ErrEmptyCompletion = errors.New("no content returned by model")

// Options are the fixed sampling parameters applied to every request.
type Options struct {
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// Client is a chat completions client for Groq's OpenAI-compatible API.
type Client struct {
	Model       string
	Temperature float32
	MaxTokens   int
	api         *openai.Client
}

func New(apiKey string, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	// go-openai drops a zero temperature from the request body and the
	// server then applies its own default.
	if opts.Temperature == 0 {
		opts.Temperature = math.SmallestNonzeroFloat32
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}

	return &Client{
		Model:       opts.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		api:         openai.NewClientWithConfig(cfg),
	}
}

// Ask performs one system+user round trip and returns the first choice.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	})
	if err != nil {
		return "", &Error{Err: describe(err)}
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Err: fmt.Errorf("no choices returned by model: %w", ErrEmptyCompletion)}
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &Error{Err: ErrEmptyCompletion}
	}
	return content, nil
}

// describe adds the HTTP status to API errors so the message is useful in logs.
func describe(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("http %d: %w", apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("http %d: %w", reqErr.HTTPStatusCode, err)
	}
	return err
}
