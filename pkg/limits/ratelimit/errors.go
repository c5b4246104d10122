package ratelimit

import "fmt"

// ConfigError reports a non-positive quota ceiling.
// Ceilings of zero or below would permanently block every request, so they
// are rejected at construction instead of silently enforced.
type ConfigError struct {
	// Field is the configuration field with the invalid value.
	Field string

	// Value is the rejected ceiling.
	Value int
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("rate limit ceiling %s must be positive, got %d", e.Field, e.Value)
}

// EstimateError reports a non-positive token estimate passed to Check or Wait.
type EstimateError struct {
	// Estimate is the rejected value.
	Estimate int
}

// Error implements the error interface.
func (e *EstimateError) Error() string {
	return fmt.Sprintf("token estimate must be positive, got %d", e.Estimate)
}
