package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/limits/ratelimit"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/models"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g.,
	// "models.claude.limits.requests_per_minute").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. All field errors are collected before reporting.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// knownProviders lists the valid values for a model's provider field.
var knownProviders = map[string]bool{
	"anthropic": true,
	"local":     true,
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is
// valid.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateModels(cfg.Models)...)
	errs = append(errs, validateLocal(&cfg.Local)...)
	errs = append(errs, validateGeneration(&cfg.Generation)...)

	if cfg.Download.Dir == "" {
		errs = append(errs, FieldError{
			Field:   "download.dir",
			Message: "must not be empty",
		})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// validateModels checks every model entry for a known family, a known
// provider, and admissible rate-limit ceilings.
func validateModels(entries map[string]ModelConfig) []FieldError {
	var errs []FieldError

	if len(entries) == 0 {
		return []FieldError{{
			Field:   "models",
			Message: "at least one model must be configured",
		}}
	}

	for key, mc := range entries {
		prefix := fmt.Sprintf("models.%s", key)

		if _, err := models.ParseFamily(mc.Family); err != nil {
			errs = append(errs, FieldError{
				Field:   prefix + ".family",
				Message: err.Error(),
			})
		}

		if !knownProviders[mc.Provider] {
			errs = append(errs, FieldError{
				Field:   prefix + ".provider",
				Message: fmt.Sprintf("unknown provider %q (use anthropic or local)", mc.Provider),
			})
		}

		if err := mc.Limits.Validate(); err != nil {
			var cfgErr *ratelimit.ConfigError
			if errors.As(err, &cfgErr) {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("%s.limits.%s", prefix, cfgErr.Field),
					Message: fmt.Sprintf("must be positive, got %d", cfgErr.Value),
				})
			} else {
				errs = append(errs, FieldError{
					Field:   prefix + ".limits",
					Message: err.Error(),
				})
			}
		}
	}

	return errs
}

// validateLocal checks the local engine configuration.
func validateLocal(cfg *LocalConfig) []FieldError {
	var errs []FieldError

	if cfg.ContextSize <= 0 {
		errs = append(errs, FieldError{
			Field:   "local.context_size",
			Message: fmt.Sprintf("must be positive, got %d", cfg.ContextSize),
		})
	}
	if cfg.Threads < 0 {
		errs = append(errs, FieldError{
			Field:   "local.threads",
			Message: fmt.Sprintf("must not be negative, got %d", cfg.Threads),
		})
	}

	return errs
}

// validateGeneration checks the default generation parameters.
func validateGeneration(cfg *GenerationConfig) []FieldError {
	var errs []FieldError

	if cfg.MaxTokens <= 0 {
		errs = append(errs, FieldError{
			Field:   "generation.max_tokens",
			Message: fmt.Sprintf("must be positive, got %d", cfg.MaxTokens),
		})
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		errs = append(errs, FieldError{
			Field:   "generation.temperature",
			Message: fmt.Sprintf("must be between 0 and 2, got %g", cfg.Temperature),
		})
	}

	return errs
}

// LimiterConfigs extracts the per-model rate-limit configurations, keyed by
// model, in the shape the limiter registry expects.
func (c *Config) LimiterConfigs() map[string]ratelimit.Config {
	configs := make(map[string]ratelimit.Config, len(c.Models))
	for key, mc := range c.Models {
		configs[key] = mc.Limits
	}
	return configs
}
