// Explainer generates natural-language explanations of code snippets using
// local GGUF models or the Anthropic Claude API, with per-model sliding
// window rate limiting protecting API quotas.
//
// Usage:
//
//	# Explain a file with the default model
//	explainer explain main.go
//
//	# Explain code from stdin using a local model
//	cat main.go | explainer explain --model tinyllama
//
//	# Inspect rate-limit usage
//	explainer ratelimit status
//
//	# List and download local models
//	explainer models list
//	explainer models download tinyllama
//
//	# Show version information
//	explainer version
package main

func main() {
	Execute()
}
