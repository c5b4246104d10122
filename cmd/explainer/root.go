package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/config"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "explainer",
	Short: "Explain code snippets with local or API language models",
	Long: `Explainer generates natural-language explanations of code snippets.

It supports local GGUF models run through a llama.cpp-compatible binary as
well as the Anthropic Claude API. Every generation passes through a per-model
rate limiter that tracks request and token usage over sliding one-minute and
one-day windows, so API quotas are respected without manual bookkeeping.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads configuration and installs the logger. Every subcommand
// that touches models or limits goes through here.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if _, err := logging.Setup(cfg.Logging); err != nil {
		return nil, err
	}

	return cfg, nil
}
