package providers

import (
	"fmt"
	"time"
)

// ProviderError represents a general provider failure.
type ProviderError struct {
	// Provider is the name of the provider that returned the error.
	Provider string

	// StatusCode is the HTTP status code (0 if not applicable).
	StatusCode int

	// Message is the error message.
	Message string

	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %q error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %q error: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// AuthError represents an authentication failure (HTTP 401/403).
type AuthError struct {
	// Provider is the name of the provider that rejected authentication.
	Provider string

	// Message is the error message from the provider.
	Message string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("provider %q authentication failed: %s", e.Provider, e.Message)
}

// RateLimitError represents a provider-side rate limit (HTTP 429).
// This is the remote provider refusing a request, not the local admission
// limiter giving up.
type RateLimitError struct {
	// Provider is the name of the provider that rate limited the request.
	Provider string

	// RetryAfter is the wait the provider suggested (if any).
	RetryAfter time.Duration

	// Message is the error message from the provider.
	Message string
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider %q rate limit exceeded (retry after %s): %s",
			e.Provider, e.RetryAfter, e.Message)
	}
	return fmt.Sprintf("provider %q rate limit exceeded: %s", e.Provider, e.Message)
}

// TimeoutError represents a request that exceeded its deadline.
type TimeoutError struct {
	// Provider is the name of the provider where the timeout occurred.
	Provider string

	// Timeout is the configured timeout duration.
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("provider %q request timed out after %s", e.Provider, e.Timeout)
}
