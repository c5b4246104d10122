package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("request admitted", "model", "claude", "tokens", 120)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "request admitted" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["model"] != "claude" {
		t.Errorf("model = %v", entry["model"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("model loaded", "model", "tinyllama")

	out := buf.String()
	if !strings.Contains(out, "model loaded") || !strings.Contains(out, "model=tinyllama") {
		t.Errorf("Unexpected text output: %q", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("suppressed")
	logger.Info("suppressed too")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("Low-severity entries leaked: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("Warn entry missing: %q", out)
	}
}

func TestNew_DefaultsToInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("hidden")
	logger.Info("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("Debug entry should be filtered at default level")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Errorf("Default format should be JSON: %v", err)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("Expected error for invalid level")
	}
}

func TestNew_InvalidFormat(t *testing.T) {
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("Expected error for invalid format")
	}
}

func TestSetup_InstallsDefault(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	if _, err := Setup(Config{Level: "info", Format: "text", Writer: &buf}); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	slog.Info("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("Default logger not installed: %q", buf.String())
	}
}
