package config

import (
	"time"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/limits/ratelimit"
)

// Default generation parameters.
const (
	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.7
)

// DefaultContextSize is the local engine's prompt context window.
const DefaultContextSize = 2048

// DefaultDownloadDir is where model files land relative to the working
// directory.
const DefaultDownloadDir = "models"

// DefaultAnthropicTimeout bounds a single Claude API request.
const DefaultAnthropicTimeout = 120 * time.Second

// defaultClaudeLimits reflects the Anthropic API tier the explainer was
// built against.
var defaultClaudeLimits = ratelimit.Config{
	RequestsPerMinute: 20,
	TokensPerMinute:   100000,
	RequestsPerDay:    10000,
	TokensPerDay:      1000000,
}

// defaultLocalLimits is deliberately generous. Local inference has no
// upstream quota, but the same admission path applies so runaway loops
// still hit a ceiling.
var defaultLocalLimits = ratelimit.Config{
	RequestsPerMinute: 600,
	TokensPerMinute:   1000000,
	RequestsPerDay:    100000,
	TokensPerDay:      100000000,
}

// defaultModels covers the models the downloader knows about plus the
// Claude API entry.
func defaultModels() map[string]ModelConfig {
	return map[string]ModelConfig{
		"claude": {
			Family:   "claude",
			Provider: "anthropic",
			Limits:   defaultClaudeLimits,
		},
		"tinyllama": {
			Family:   "llama",
			Provider: "local",
			Limits:   defaultLocalLimits,
		},
		"orca-mini": {
			Family:   "llama",
			Provider: "local",
			Limits:   defaultLocalLimits,
		},
		"mistral": {
			Family:   "mistral",
			Provider: "local",
			Limits:   defaultLocalLimits,
		},
	}
}

// ApplyDefaults fills in default values for any unset configuration fields.
// It modifies the configuration in place.
func ApplyDefaults(cfg *Config) {
	if len(cfg.Models) == 0 {
		cfg.Models = defaultModels()
	} else {
		for key, mc := range cfg.Models {
			if mc.Limits == (ratelimit.Config{}) {
				if mc.Provider == "anthropic" {
					mc.Limits = defaultClaudeLimits
				} else {
					mc.Limits = defaultLocalLimits
				}
				cfg.Models[key] = mc
			}
		}
	}

	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = "claude-3-7-sonnet-20250219"
	}
	if cfg.Anthropic.Timeout <= 0 {
		cfg.Anthropic.Timeout = DefaultAnthropicTimeout
	}

	if cfg.Local.Binary == "" {
		cfg.Local.Binary = "llama-cli"
	}
	if cfg.Local.ContextSize <= 0 {
		cfg.Local.ContextSize = DefaultContextSize
	}

	if cfg.Download.Dir == "" {
		cfg.Download.Dir = DefaultDownloadDir
	}

	if cfg.Generation.MaxTokens <= 0 {
		cfg.Generation.MaxTokens = DefaultMaxTokens
	}
	if cfg.Generation.Temperature == 0 {
		cfg.Generation.Temperature = DefaultTemperature
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
