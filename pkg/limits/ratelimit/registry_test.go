package ratelimit

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func testConfigs() map[string]Config {
	return map[string]Config{
		"claude": {
			RequestsPerMinute: 20,
			TokensPerMinute:   100000,
			RequestsPerDay:    10000,
			TokensPerDay:      1000000,
		},
		"gpt": {
			RequestsPerMinute: 10,
			TokensPerMinute:   50000,
			RequestsPerDay:    5000,
			TokensPerDay:      500000,
		},
	}
}

func TestRegistry_GetAndNames(t *testing.T) {
	registry, err := NewRegistry(testConfigs(), nil)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}

	limiter, ok := registry.Get("claude")
	if !ok {
		t.Fatal("Expected limiter for claude")
	}
	if limiter.Name() != "claude" {
		t.Errorf("Expected name claude, got %q", limiter.Name())
	}

	if _, ok := registry.Get("unknown"); ok {
		t.Error("Expected no limiter for unknown model")
	}

	names := registry.Names()
	if len(names) != 2 || names[0] != "claude" || names[1] != "gpt" {
		t.Errorf("Expected sorted names [claude gpt], got %v", names)
	}
}

func TestRegistry_RejectsInvalidConfig(t *testing.T) {
	_, err := NewRegistry(map[string]Config{
		"broken": {RequestsPerMinute: 0},
	}, nil)
	if err == nil {
		t.Fatal("Expected error for invalid model config")
	}
}

func TestRegistry_Snapshots(t *testing.T) {
	registry, err := NewRegistry(testConfigs(), nil)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}

	claude, _ := registry.Get("claude")
	claude.Record(100)

	snapshots := registry.Snapshots()
	if len(snapshots) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(snapshots))
	}
	if snapshots[0].Name != "claude" || snapshots[0].TotalRequests != 1 {
		t.Errorf("Unexpected claude snapshot: %+v", snapshots[0])
	}
	if snapshots[1].Name != "gpt" || snapshots[1].TotalRequests != 0 {
		t.Errorf("Unexpected gpt snapshot: %+v", snapshots[1])
	}
}

func TestRegistry_MetricsWired(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetricsWith(reg)

	registry, err := NewRegistry(testConfigs(), metrics)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}

	limiter, _ := registry.Get("claude")
	limiter.Record(250)
	if _, err := limiter.Check(100); err != nil {
		t.Fatalf("Check returned error: %v", err)
	}

	got := testutil.ToFloat64(metrics.requests.WithLabelValues("claude"))
	if got != 1 {
		t.Errorf("Expected 1 recorded request metric, got %v", got)
	}
	got = testutil.ToFloat64(metrics.tokens.WithLabelValues("claude"))
	if got != 250 {
		t.Errorf("Expected 250 recorded tokens metric, got %v", got)
	}
	got = testutil.ToFloat64(metrics.checks.WithLabelValues("claude", "allowed"))
	if got != 1 {
		t.Errorf("Expected 1 allowed check metric, got %v", got)
	}
}

func TestMetrics_NilReceiverSafe(t *testing.T) {
	var metrics *Metrics
	metrics.recordCheck("m", CheckResult{Allowed: true})
	metrics.recordHit("m", LimitTokensPerMinute)
	metrics.addWait("m", 0)
	metrics.recordUsage("m", 10)
	metrics.setUtilization("m", 0, 0)
}
