package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// A missing file is not an error; defaults are used instead, so the
// explainer runs with zero setup. Defaults are applied and the result
// validated before returning.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Run on defaults.
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention EXPLAINER_SECTION_FIELD (e.g., EXPLAINER_ANTHROPIC_API_KEY) and
// always take precedence over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("EXPLAINER_ANTHROPIC_API_KEY"); val != "" {
		cfg.Anthropic.APIKey = val
	}
	// The upstream SDK's conventional variable also works, matching what
	// users of the API already have exported.
	if cfg.Anthropic.APIKey == "" {
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if val := os.Getenv("EXPLAINER_ANTHROPIC_MODEL"); val != "" {
		cfg.Anthropic.Model = val
	}
	if val := os.Getenv("EXPLAINER_ANTHROPIC_BASE_URL"); val != "" {
		cfg.Anthropic.BaseURL = val
	}
	if val := os.Getenv("EXPLAINER_ANTHROPIC_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Anthropic.Timeout = d
		}
	}

	if val := os.Getenv("EXPLAINER_LOCAL_BINARY"); val != "" {
		cfg.Local.Binary = val
	}
	if val := os.Getenv("EXPLAINER_LOCAL_CONTEXT_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Local.ContextSize = i
		}
	}
	if val := os.Getenv("EXPLAINER_LOCAL_THREADS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Local.Threads = i
		}
	}

	if val := os.Getenv("EXPLAINER_DOWNLOAD_DIR"); val != "" {
		cfg.Download.Dir = val
	}

	if val := os.Getenv("EXPLAINER_GENERATION_MAX_TOKENS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Generation.MaxTokens = i
		}
	}
	if val := os.Getenv("EXPLAINER_GENERATION_TEMPERATURE"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Generation.Temperature = f
		}
	}

	if val := os.Getenv("EXPLAINER_LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("EXPLAINER_LOG_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
}
