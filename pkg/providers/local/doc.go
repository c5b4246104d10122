// Package local implements the providers.Provider interface on top of a
// llama.cpp-compatible inference binary running a GGUF model file. The
// engine shells out for each generation; it reports no token usage, so
// callers reconcile rate-limit accounting with estimates instead.
package local
