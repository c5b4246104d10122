package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/cli"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/limits/ratelimit"
)

var ratelimitFlags struct {
	model  string
	output string
}

var ratelimitCmd = &cobra.Command{
	Use:   "ratelimit",
	Short: "Inspect rate-limit configuration and usage",
}

var ratelimitStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show rate-limit windows and usage for configured models",
	Long: `Show current rate-limit usage for every configured model, or a single
model with --model.

Counters reflect this process only; usage from other invocations is not
shared. The configured ceilings and window utilization still show how far a
fresh run can go before throttling.

Examples:
  # All models
  explainer ratelimit status

  # One model, machine readable
  explainer ratelimit status --model claude --output json`,
	RunE: runRatelimitStatus,
}

func init() {
	rootCmd.AddCommand(ratelimitCmd)
	ratelimitCmd.AddCommand(ratelimitStatusCmd)

	ratelimitStatusCmd.Flags().StringVarP(&ratelimitFlags.model, "model", "m", "", "show a single model")
	ratelimitStatusCmd.Flags().StringVarP(&ratelimitFlags.output, "output", "o", "json", "output format (text, json)")
}

func runRatelimitStatus(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(ratelimitFlags.output)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := ratelimit.NewRegistry(cfg.LimiterConfigs(), nil)
	if err != nil {
		return err
	}

	var snapshots []ratelimit.UsageSnapshot
	if ratelimitFlags.model != "" {
		limiter, ok := registry.Get(ratelimitFlags.model)
		if !ok {
			return fmt.Errorf("unknown model %q (configured: %s)",
				ratelimitFlags.model, strings.Join(registry.Names(), ", "))
		}
		snapshots = []ratelimit.UsageSnapshot{limiter.Snapshot()}
	} else {
		snapshots = registry.Snapshots()
	}

	if format == cli.FormatJSON {
		return cli.NewFormatter(format).FormatTo(os.Stdout, snapshots)
	}

	for _, snap := range snapshots {
		limits := cfg.Models[snap.Name].Limits
		fmt.Printf("%s\n", snap.Name)
		fmt.Printf("  minute: %d/%d requests, %d/%d tokens (%.1f%%)\n",
			snap.CurrentMinuteRequests, limits.RequestsPerMinute,
			snap.CurrentMinuteTokens, limits.TokensPerMinute,
			snap.MinuteLimitPercent)
		fmt.Printf("  day:    %d/%d requests, %d/%d tokens (%.1f%%)\n",
			snap.CurrentDayRequests, limits.RequestsPerDay,
			snap.CurrentDayTokens, limits.TokensPerDay,
			snap.DayLimitPercent)
		fmt.Printf("  lifetime: %d requests, %d tokens, %d rate-limit hits, %.1fs waited\n",
			snap.TotalRequests, snap.TotalTokens, snap.RateLimitHits, snap.TotalWaitSeconds)
	}
	return nil
}
