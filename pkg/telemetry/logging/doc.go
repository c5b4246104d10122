// Package logging configures structured logging for the explainer.
//
// The package builds a log/slog logger from configuration, supporting JSON
// output for machine consumption and text output for terminals. Commands
// install the logger as the process default so every package logs through
// the same handler.
package logging
