package local

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/providers"
)

// ProviderName identifies this provider in logs and errors.
const ProviderName = "local"

// DefaultBinary is the inference binary looked up on PATH when none is
// configured.
const DefaultBinary = "llama-cli"

// DefaultContextSize is the prompt context window passed to the binary.
const DefaultContextSize = 2048

// Config configures a local inference engine.
type Config struct {
	// ModelPath is the GGUF model file to load. Required.
	ModelPath string

	// Binary is the llama.cpp-compatible executable. Defaults to
	// DefaultBinary.
	Binary string

	// ContextSize is the context window in tokens. Defaults to
	// DefaultContextSize.
	ContextSize int

	// Threads limits CPU threads. Zero lets the binary decide.
	Threads int
}

// runFunc executes a prepared command and returns its stdout. Replaceable
// in tests.
type runFunc func(cmd *exec.Cmd) ([]byte, error)

// Engine runs generations through a local inference binary.
type Engine struct {
	modelPath   string
	binary      string
	contextSize int
	threads     int

	run runFunc
}

// New creates a local engine. The model file must already exist; missing
// models are a setup error, not a generation error.
func New(cfg Config) (*Engine, error) {
	if cfg.ModelPath == "" {
		return nil, &providers.ProviderError{
			Provider: ProviderName,
			Message:  "model path is required",
		}
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, &providers.ProviderError{
			Provider: ProviderName,
			Message:  fmt.Sprintf("model file not found: %s", cfg.ModelPath),
			Cause:    err,
		}
	}

	binary := cfg.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	contextSize := cfg.ContextSize
	if contextSize <= 0 {
		contextSize = DefaultContextSize
	}

	return &Engine{
		modelPath:   cfg.ModelPath,
		binary:      binary,
		contextSize: contextSize,
		threads:     cfg.Threads,
		run:         runCommand,
	}, nil
}

// Name implements providers.Provider.
func (e *Engine) Name() string {
	return ProviderName
}

// Generate implements providers.Provider. Usage in the response is zero
// and marked inexact; the binary does not report token counts.
func (e *Engine) Generate(ctx context.Context, req *providers.GenerationRequest) (*providers.GenerationResponse, error) {
	args := e.buildArgs(req)

	slog.Debug("Running local inference",
		"binary", e.binary,
		"model", e.modelPath,
		"max_tokens", req.MaxTokens)

	cmd := exec.CommandContext(ctx, e.binary, args...)
	output, err := e.run(cmd)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &providers.ProviderError{
				Provider: ProviderName,
				Message:  "inference cancelled",
				Cause:    ctx.Err(),
			}
		}
		return nil, &providers.ProviderError{
			Provider: ProviderName,
			Message:  fmt.Sprintf("inference binary failed: %s", firstLine(output)),
			Cause:    err,
		}
	}

	text := strings.TrimSpace(string(output))
	text = trimAtStop(text, req.Stop)

	return &providers.GenerationResponse{
		Text:  text,
		Usage: providers.TokenUsage{},
		Exact: false,
	}, nil
}

// buildArgs assembles the llama.cpp command line for a request.
func (e *Engine) buildArgs(req *providers.GenerationRequest) []string {
	args := []string{
		"-m", e.modelPath,
		"-p", req.Prompt,
		"-n", strconv.Itoa(req.MaxTokens),
		"-c", strconv.Itoa(e.contextSize),
		"--temp", strconv.FormatFloat(req.Temperature, 'f', -1, 64),
		"--no-display-prompt",
	}
	if e.threads > 0 {
		args = append(args, "-t", strconv.Itoa(e.threads))
	}
	for _, stop := range req.Stop {
		args = append(args, "-r", stop)
	}
	return args
}

// runCommand executes the command, capturing stderr separately so error
// output is not mixed into the generation.
func runCommand(cmd *exec.Cmd) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return stderr.Bytes(), err
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// trimAtStop cuts output at the first stop sequence. The binary already
// halts on reverse prompts, but the matched sequence itself can leak into
// stdout.
func trimAtStop(text string, stops []string) string {
	for _, stop := range stops {
		if idx := strings.Index(text, stop); idx >= 0 {
			text = text[:idx]
		}
	}
	return strings.TrimSpace(text)
}

// firstLine returns the first line of output for compact error messages.
func firstLine(output []byte) string {
	line := string(output)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	if line == "" {
		return "no output"
	}
	return line
}

var _ providers.Provider = (*Engine)(nil)
