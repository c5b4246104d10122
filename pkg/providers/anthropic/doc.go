// Package anthropic implements the providers.Provider interface against the
// Anthropic Messages API. Responses carry exact token usage, so explanations
// routed through this provider reconcile their rate-limit accounting with the
// provider's own counts rather than estimates.
package anthropic
