// Package models defines the model catalog and the artifact downloader.
//
// The catalog enumerates every model the explainer knows how to run: local
// GGUF files fetched from Hugging Face, and cloud API models that need no
// artifact but require provider credentials. The downloader fetches local
// model files with progress reporting, verifies their size, and cleans up
// partial files on failure.
package models
