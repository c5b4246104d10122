package models

import (
	"fmt"
	"sort"
)

// Family identifies a model architecture family. It selects the prompt
// template, stop sequences, and token-estimation ratio used for a model.
type Family string

const (
	// FamilyLlama covers Llama-style instruction models.
	FamilyLlama Family = "llama"

	// FamilyMistral covers Mistral instruction models (Llama-style prompts).
	FamilyMistral Family = "mistral"

	// FamilyPhi covers Phi chat models.
	FamilyPhi Family = "phi"

	// FamilyGPTNeoX covers GPT-NeoX style models.
	FamilyGPTNeoX Family = "gpt-neox"

	// FamilyClaude covers Anthropic Claude API models.
	FamilyClaude Family = "claude"
)

// Families lists every supported family.
func Families() []Family {
	return []Family{FamilyLlama, FamilyMistral, FamilyPhi, FamilyGPTNeoX, FamilyClaude}
}

// ParseFamily converts a string to a Family, rejecting unknown values.
func ParseFamily(s string) (Family, error) {
	for _, f := range Families() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown model family %q (supported: %v)", s, Families())
}

// Model describes one catalog entry.
type Model struct {
	// Key is the short catalog identifier (e.g., "tinyllama").
	Key string

	// Name is the human-readable model name.
	Name string

	// Family is the model's architecture family.
	Family Family

	// File is the artifact filename inside the models directory.
	// Empty for API-only models.
	File string

	// URL is the download location for the artifact.
	// Empty for API-only models.
	URL string

	// Size is the expected artifact size in bytes, used to verify downloads.
	Size int64

	// API marks cloud models that need credentials instead of an artifact.
	API bool

	// APIInfo describes the access requirements for API-only models.
	APIInfo string
}

// Catalog returns the built-in model catalog.
func Catalog() map[string]Model {
	return map[string]Model{
		"tinyllama": {
			Key:    "tinyllama",
			Name:   "TinyLlama 1.1B Chat",
			Family: FamilyLlama,
			File:   "tinyllama-1.1b-chat-v1.0.Q4_K_M.gguf",
			URL:    "https://huggingface.co/TheBloke/TinyLlama-1.1B-Chat-v1.0-GGUF/resolve/main/tinyllama-1.1b-chat-v1.0.Q4_K_M.gguf",
			Size:   734003200,
		},
		"orca-mini": {
			Key:    "orca-mini",
			Name:   "Orca Mini 3B",
			Family: FamilyLlama,
			File:   "q4_1-orca-mini-3b.gguf",
			URL:    "https://huggingface.co/Aryanne/Orca-Mini-3B-gguf/resolve/main/q4_1-orca-mini-3b.gguf",
			Size:   2200000000,
		},
		"mistral": {
			Key:    "mistral",
			Name:   "Mistral 7B Instruct",
			Family: FamilyMistral,
			File:   "mistral-7b-instruct-v0.2.Q4_K_M.gguf",
			URL:    "https://huggingface.co/TheBloke/Mistral-7B-Instruct-v0.2-GGUF/resolve/main/mistral-7b-instruct-v0.2.Q4_K_M.gguf",
			Size:   3931086848,
		},
		"claude": {
			Key:     "claude",
			Name:    "Anthropic Claude Sonnet",
			Family:  FamilyClaude,
			API:     true,
			APIInfo: "Requires ANTHROPIC_API_KEY; no artifact download.",
		},
	}
}

// Lookup returns the catalog entry for a key.
func Lookup(key string) (Model, error) {
	model, ok := Catalog()[key]
	if !ok {
		return Model{}, fmt.Errorf("unknown model %q (available: %v)", key, CatalogKeys())
	}
	return model, nil
}

// CatalogKeys returns the catalog keys in sorted order.
func CatalogKeys() []string {
	catalog := Catalog()
	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
