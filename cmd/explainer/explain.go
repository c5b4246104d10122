package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/cli"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/config"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/explain"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/limits/ratelimit"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/models"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/processing/tokens"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/providers"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/providers/anthropic"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/providers/local"
)

var explainFlags struct {
	model       string
	maxTokens   int
	temperature float64
	output      string
}

var explainCmd = &cobra.Command{
	Use:   "explain [file]",
	Short: "Explain a code snippet",
	Long: `Explain a code snippet from a file or stdin.

The request is admitted through the model's rate limiter before the provider
is called; if the limiter cannot admit it within 30 seconds the command fails
with a retry-later error instead of blocking indefinitely.

Examples:
  # Explain a file with the default model
  explainer explain main.go

  # Explain code from stdin with a local model
  cat main.go | explainer explain --model tinyllama

  # Tune generation parameters
  explainer explain main.go --max-tokens 512 --temperature 0.2

  # Machine-readable output
  explainer explain main.go --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().StringVarP(&explainFlags.model, "model", "m", "claude", "model key to use")
	explainCmd.Flags().IntVar(&explainFlags.maxTokens, "max-tokens", 0, "maximum tokens for generation (default from config)")
	explainCmd.Flags().Float64Var(&explainFlags.temperature, "temperature", -1, "sampling temperature (default from config)")
	explainCmd.Flags().StringVarP(&explainFlags.output, "output", "o", "text", "output format (text, json)")
}

// explainOutput is the JSON shape of a completed explanation.
type explainOutput struct {
	Model       string  `json:"model"`
	Explanation string  `json:"explanation"`
	TokensUsed  int     `json:"tokens_used"`
	ExactUsage  bool    `json:"exact_usage"`
	ElapsedSecs float64 `json:"elapsed_seconds"`
}

func runExplain(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(explainFlags.output)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	code, err := readCode(args)
	if err != nil {
		return err
	}

	modelCfg, ok := cfg.Models[explainFlags.model]
	if !ok {
		return cli.NewConfigError("models", fmt.Sprintf("model %q is not configured", explainFlags.model))
	}
	family, err := models.ParseFamily(modelCfg.Family)
	if err != nil {
		return cli.NewConfigError(fmt.Sprintf("models.%s.family", explainFlags.model), err.Error())
	}

	provider, err := buildProvider(cfg, explainFlags.model, modelCfg)
	if err != nil {
		return err
	}

	registry, err := ratelimit.NewRegistry(cfg.LimiterConfigs(), ratelimit.NewMetrics())
	if err != nil {
		return err
	}

	maxTokens := explainFlags.maxTokens
	if maxTokens <= 0 {
		maxTokens = cfg.Generation.MaxTokens
	}
	temperature := explainFlags.temperature
	if temperature < 0 {
		temperature = cfg.Generation.Temperature
	}

	explainer := explain.New(registry, tokens.NewSimpleEstimator(nil), provider, nil)

	ctx := cli.SetupSignalHandler()
	result, err := explainer.Explain(ctx, &explain.Request{
		Model:       explainFlags.model,
		Family:      family,
		Code:        code,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		if errors.Is(err, explain.ErrRateLimited) {
			return fmt.Errorf("%w\nCheck current usage with: explainer ratelimit status", err)
		}
		return err
	}

	if format == cli.FormatJSON {
		return cli.NewFormatter(format).FormatTo(os.Stdout, explainOutput{
			Model:       explainFlags.model,
			Explanation: result.Explanation,
			TokensUsed:  result.Usage.TotalTokens,
			ExactUsage:  result.ExactUsage,
			ElapsedSecs: result.Elapsed.Seconds(),
		})
	}

	fmt.Println(result.Explanation)
	return nil
}

// readCode reads the snippet from the file argument, or stdin when no
// argument is given.
func readCode(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading code file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading code from stdin: %w", err)
	}
	if len(data) == 0 {
		return "", errors.New("no code provided: pass a file argument or pipe code on stdin")
	}
	return string(data), nil
}

// buildProvider constructs the generation backend for a model entry.
func buildProvider(cfg *config.Config, key string, modelCfg config.ModelConfig) (providers.Provider, error) {
	switch modelCfg.Provider {
	case "anthropic":
		return anthropic.New(anthropic.Config{
			APIKey:  cfg.Anthropic.APIKey,
			Model:   cfg.Anthropic.Model,
			BaseURL: cfg.Anthropic.BaseURL,
			Timeout: cfg.Anthropic.Timeout,
		})
	case "local":
		model, err := models.Lookup(key)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(cfg.Download.Dir, model.File)
		engine, err := local.New(local.Config{
			ModelPath:   path,
			Binary:      cfg.Local.Binary,
			ContextSize: cfg.Local.ContextSize,
			Threads:     cfg.Local.Threads,
		})
		if err != nil {
			if _, statErr := os.Stat(path); statErr != nil {
				return nil, fmt.Errorf("model file %q not found; fetch it with: explainer models download %s", path, key)
			}
			return nil, err
		}
		return engine, nil
	default:
		return nil, cli.NewConfigError(
			fmt.Sprintf("models.%s.provider", key),
			fmt.Sprintf("unknown provider %q", modelCfg.Provider))
	}
}
