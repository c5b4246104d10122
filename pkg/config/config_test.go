package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfigFile writes YAML content to a temp file and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

// ============================================================================
// Defaults
// ============================================================================

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	claude, ok := cfg.Models["claude"]
	if !ok {
		t.Fatal("Default models missing claude entry")
	}
	if claude.Limits.RequestsPerMinute != 20 || claude.Limits.TokensPerMinute != 100000 {
		t.Errorf("Claude minute limits = %+v", claude.Limits)
	}
	if claude.Limits.RequestsPerDay != 10000 || claude.Limits.TokensPerDay != 1000000 {
		t.Errorf("Claude day limits = %+v", claude.Limits)
	}

	if cfg.Generation.MaxTokens != DefaultMaxTokens {
		t.Errorf("MaxTokens = %d, want %d", cfg.Generation.MaxTokens, DefaultMaxTokens)
	}
	if cfg.Generation.Temperature != DefaultTemperature {
		t.Errorf("Temperature = %g, want %g", cfg.Generation.Temperature, DefaultTemperature)
	}
	if cfg.Download.Dir != DefaultDownloadDir {
		t.Errorf("Download.Dir = %q", cfg.Download.Dir)
	}
	if cfg.Local.ContextSize != DefaultContextSize {
		t.Errorf("ContextSize = %d", cfg.Local.ContextSize)
	}
	if cfg.Anthropic.Timeout != DefaultAnthropicTimeout {
		t.Errorf("Anthropic.Timeout = %s", cfg.Anthropic.Timeout)
	}
}

func TestApplyDefaults_FillsModelLimits(t *testing.T) {
	cfg := &Config{
		Models: map[string]ModelConfig{
			"custom": {Family: "llama", Provider: "local"},
		},
	}
	ApplyDefaults(cfg)

	limits := cfg.Models["custom"].Limits
	if limits.RequestsPerMinute <= 0 || limits.TokensPerDay <= 0 {
		t.Errorf("Defaults not applied to model limits: %+v", limits)
	}
}

// ============================================================================
// Loading and overrides
// ============================================================================

func TestLoadConfig_ParsesYAML(t *testing.T) {
	path := writeConfigFile(t, `
models:
  claude:
    family: claude
    provider: anthropic
    limits:
      requests_per_minute: 5
      tokens_per_minute: 40000
      requests_per_day: 500
      tokens_per_day: 400000
generation:
  max_tokens: 256
  temperature: 0.2
logging:
  level: debug
  format: json
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	claude := cfg.Models["claude"]
	if claude.Limits.RequestsPerMinute != 5 {
		t.Errorf("RequestsPerMinute = %d, want 5", claude.Limits.RequestsPerMinute)
	}
	if cfg.Generation.MaxTokens != 256 {
		t.Errorf("MaxTokens = %d, want 256", cfg.Generation.MaxTokens)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "models: [not a map")
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	t.Setenv("EXPLAINER_ANTHROPIC_API_KEY", "env-key")
	t.Setenv("EXPLAINER_ANTHROPIC_TIMEOUT", "30s")
	t.Setenv("EXPLAINER_GENERATION_MAX_TOKENS", "777")
	t.Setenv("EXPLAINER_LOG_LEVEL", "warn")

	cfg, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() error = %v", err)
	}

	if cfg.Anthropic.APIKey != "env-key" {
		t.Errorf("APIKey = %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s", cfg.Anthropic.Timeout)
	}
	if cfg.Generation.MaxTokens != 777 {
		t.Errorf("MaxTokens = %d", cfg.Generation.MaxTokens)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfigWithEnvOverrides_FallsBackToSDKKey(t *testing.T) {
	t.Setenv("EXPLAINER_ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sdk-key")

	cfg, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() error = %v", err)
	}
	if cfg.Anthropic.APIKey != "sdk-key" {
		t.Errorf("APIKey = %q, want fallback from ANTHROPIC_API_KEY", cfg.Anthropic.APIKey)
	}
}

// ============================================================================
// Validation
// ============================================================================

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Models: map[string]ModelConfig{
			"bad": {Family: "cobol", Provider: "carrier-pigeon"},
		},
		Local:      LocalConfig{ContextSize: -1},
		Generation: GenerationConfig{MaxTokens: 0, Temperature: 9},
	}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("Expected ValidationError, got %T", err)
	}
	if len(verr.Errors) < 5 {
		t.Errorf("Expected at least 5 field errors, got %d: %v", len(verr.Errors), verr)
	}
}

func TestValidate_RejectsNonPositiveCeilings(t *testing.T) {
	path := writeConfigFile(t, `
models:
  claude:
    family: claude
    provider: anthropic
    limits:
      requests_per_minute: 0
      tokens_per_minute: 40000
      requests_per_day: 500
      tokens_per_day: 400000
`)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected error for zero ceiling")
	}
	if !strings.Contains(err.Error(), "requests_per_minute") {
		t.Errorf("Error should name the offending field: %v", err)
	}
}

func TestValidate_RejectsEmptyModels(t *testing.T) {
	cfg := &Config{
		Models:     map[string]ModelConfig{},
		Local:      LocalConfig{ContextSize: 2048},
		Download:   DownloadConfig{Dir: "models"},
		Generation: GenerationConfig{MaxTokens: 100, Temperature: 0.5},
	}
	if err := Validate(cfg); err == nil {
		t.Error("Expected error for empty models map")
	}
}

func TestLimiterConfigs(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	configs := cfg.LimiterConfigs()
	if len(configs) != len(cfg.Models) {
		t.Fatalf("LimiterConfigs() returned %d entries, want %d", len(configs), len(cfg.Models))
	}
	if configs["claude"].RequestsPerMinute != 20 {
		t.Errorf("claude RequestsPerMinute = %d", configs["claude"].RequestsPerMinute)
	}
}
