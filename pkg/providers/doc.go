// Package providers defines the text-generation provider abstraction.
//
// A Provider turns a rendered prompt into an explanation. Two families of
// implementations exist: cloud API providers (anthropic) that report exact
// token usage, and local engines (local) that run GGUF models and report no
// usage, leaving the caller to fall back on estimates.
//
// Provider errors are typed so callers can distinguish authentication
// failures, provider-side rate limits (HTTP 429, distinct from the local
// admission limiter), and timeouts.
package providers
