package providers

import "context"

// TokenUsage tracks token consumption for a single generation.
type TokenUsage struct {
	// PromptTokens is the number of tokens in the prompt.
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens generated.
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is prompt plus completion.
	TotalTokens int `json:"total_tokens"`
}

// GenerationRequest is a provider-agnostic text-generation request.
// The prompt arrives fully rendered for the target model family.
type GenerationRequest struct {
	// Prompt is the complete rendered prompt.
	Prompt string

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls sampling randomness.
	Temperature float64

	// Stop sequences halt generation when emitted.
	Stop []string
}

// GenerationResponse is a provider-agnostic generation result.
type GenerationResponse struct {
	// Text is the raw generated output, before post-processing.
	Text string

	// Usage reports token consumption. Exact for API providers; zero for
	// local engines that do not count tokens.
	Usage TokenUsage

	// Exact indicates whether Usage came from the provider (true) or must
	// be estimated by the caller (false).
	Exact bool
}

// Provider generates text from a prompt.
type Provider interface {
	// Name returns the provider identifier used in logs and errors.
	Name() string

	// Generate performs a single non-streaming generation.
	Generate(ctx context.Context, req *GenerationRequest) (*GenerationResponse, error)
}
