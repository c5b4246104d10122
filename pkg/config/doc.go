// Package config defines the explainer configuration model and its loading
// pipeline.
//
// Configuration comes from a YAML file, with defaults applied for anything
// omitted and environment variables (EXPLAINER_*) taking final precedence.
// The loading sequence is:
//
//  1. Parse YAML from file (a missing file yields pure defaults)
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate the final configuration
//
// Validation collects every problem into a single ValidationError rather
// than stopping at the first, so a bad file can be fixed in one pass.
package config
