package config

import (
	"time"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/limits/ratelimit"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/telemetry/logging"
)

// Config is the root configuration for the explainer.
type Config struct {
	// Models maps model keys to per-model configuration, including the
	// rate-limit ceilings enforced before each generation.
	Models map[string]ModelConfig `yaml:"models"`

	// Anthropic configures the Claude API provider.
	Anthropic AnthropicConfig `yaml:"anthropic"`

	// Local configures the local GGUF inference engine.
	Local LocalConfig `yaml:"local"`

	// Download configures model file downloads.
	Download DownloadConfig `yaml:"download"`

	// Generation holds default generation parameters.
	Generation GenerationConfig `yaml:"generation"`

	// Logging configures structured log output.
	Logging logging.Config `yaml:"logging"`
}

// ModelConfig configures a single model entry.
type ModelConfig struct {
	// Family selects the prompt template and token-estimation ratio
	// ("llama", "mistral", "phi", "gpt-neox", "claude").
	Family string `yaml:"family"`

	// Provider selects the generation backend ("anthropic", "local").
	Provider string `yaml:"provider"`

	// Limits are the sliding-window rate-limit ceilings for this model.
	Limits ratelimit.Config `yaml:"limits"`
}

// AnthropicConfig configures the Claude API provider.
type AnthropicConfig struct {
	// APIKey authenticates against the Messages API. Usually supplied via
	// EXPLAINER_ANTHROPIC_API_KEY rather than the file.
	APIKey string `yaml:"api_key"`

	// Model is the Claude model identifier to request.
	Model string `yaml:"model"`

	// BaseURL overrides the API endpoint. Empty uses the production API.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each API request.
	Timeout time.Duration `yaml:"timeout"`
}

// LocalConfig configures the local inference engine.
type LocalConfig struct {
	// Binary is the llama.cpp-compatible executable name or path.
	Binary string `yaml:"binary"`

	// ContextSize is the prompt context window in tokens.
	ContextSize int `yaml:"context_size"`

	// Threads limits CPU threads. Zero lets the binary decide.
	Threads int `yaml:"threads"`
}

// DownloadConfig configures model file downloads.
type DownloadConfig struct {
	// Dir is the directory holding downloaded GGUF files.
	Dir string `yaml:"dir"`
}

// GenerationConfig holds default generation parameters, overridable per
// invocation from the command line.
type GenerationConfig struct {
	// MaxTokens caps the completion length.
	MaxTokens int `yaml:"max_tokens"`

	// Temperature controls sampling randomness.
	Temperature float64 `yaml:"temperature"`
}
