package anthropic

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/providers"
)

// ProviderName identifies this provider in logs and errors.
const ProviderName = "anthropic"

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-3-7-sonnet-20250219"

// DefaultTimeout bounds a single generation request.
const DefaultTimeout = 120 * time.Second

// Config configures the Anthropic client.
type Config struct {
	// APIKey authenticates against the Messages API. Required.
	APIKey string

	// Model is the model identifier to request. Defaults to DefaultModel.
	Model string

	// BaseURL overrides the API endpoint. Used in tests.
	BaseURL string

	// Timeout bounds each request. Defaults to DefaultTimeout.
	Timeout time.Duration

	// MaxRetries controls SDK retry behavior. Zero keeps the SDK default;
	// a negative value disables retries.
	MaxRetries int
}

// Client calls the Anthropic Messages API.
type Client struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
}

// New creates an Anthropic provider from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &providers.AuthError{
			Provider: ProviderName,
			Message:  "API key is required",
		}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	} else if cfg.MaxRetries < 0 {
		opts = append(opts, option.WithMaxRetries(0))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		client:  anthropic.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}, nil
}

// Name implements providers.Provider.
func (c *Client) Name() string {
	return ProviderName
}

// Generate implements providers.Provider. Token usage in the response is
// exact, taken from the API's own accounting.
func (c *Client) Generate(ctx context.Context, req *providers.GenerationRequest) (*providers.GenerationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if len(req.Stop) > 0 {
		params.StopSequences = req.Stop
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, c.translateError(ctx, err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	return &providers.GenerationResponse{
		Text: text,
		Usage: providers.TokenUsage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
			TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
		},
		Exact: true,
	}, nil
}

// translateError maps SDK errors onto the typed provider errors.
func (c *Client) translateError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &providers.TimeoutError{Provider: ProviderName, Timeout: c.timeout}
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &providers.AuthError{Provider: ProviderName, Message: err.Error()}
		case http.StatusTooManyRequests:
			return &providers.RateLimitError{
				Provider:   ProviderName,
				RetryAfter: retryAfter(apiErr),
				Message:    err.Error(),
			}
		default:
			return &providers.ProviderError{
				Provider:   ProviderName,
				StatusCode: apiErr.StatusCode,
				Message:    err.Error(),
				Cause:      err,
			}
		}
	}

	return &providers.ProviderError{
		Provider: ProviderName,
		Message:  err.Error(),
		Cause:    err,
	}
}

// retryAfter extracts the Retry-After header from a rate-limit response.
func retryAfter(apiErr *anthropic.Error) time.Duration {
	if apiErr.Response == nil {
		return 0
	}
	value := apiErr.Response.Header.Get("Retry-After")
	if value == "" {
		return 0
	}
	seconds, err := time.ParseDuration(value + "s")
	if err != nil {
		return 0
	}
	return seconds
}
