package explain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/limits/ratelimit"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/models"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/processing/content"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/processing/prompt"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/processing/tokens"
	"github.com/Amrit27k/CodeExplainer-LLM/pkg/providers"
)

// ErrRateLimited is returned when a request cannot be admitted within the
// patience ceiling. The caller should retry later rather than immediately.
var ErrRateLimited = errors.New("rate limit exceeded, try again later")

// ErrUnknownModel is returned when a request names a model with no
// registered limiter.
var ErrUnknownModel = errors.New("unknown model")

// Request describes a single explanation request.
type Request struct {
	// Model is the model key, which selects the limiter and the family.
	Model string

	// Family selects the prompt template and estimation ratio.
	Family models.Family

	// Code is the snippet to explain.
	Code string

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls sampling randomness.
	Temperature float64
}

// Result is a completed explanation.
type Result struct {
	// Explanation is the cleaned output text.
	Explanation string

	// Usage is the token consumption recorded against the limiter.
	Usage providers.TokenUsage

	// ExactUsage indicates whether Usage came from the provider or from
	// the estimator.
	ExactUsage bool

	// Elapsed is the total wall time including any admission wait.
	Elapsed time.Duration
}

// Explainer runs the explanation pipeline.
type Explainer struct {
	registry  *ratelimit.Registry
	estimator tokens.Estimator
	prompts   *prompt.Builder
	cleaner   *content.Cleaner
	provider  providers.Provider
	logger    *slog.Logger

	now func() time.Time
}

// New creates an explainer around the given provider. A nil logger falls
// back to the process default.
func New(registry *ratelimit.Registry, estimator tokens.Estimator, provider providers.Provider, logger *slog.Logger) *Explainer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Explainer{
		registry:  registry,
		estimator: estimator,
		prompts:   prompt.NewBuilder(),
		cleaner:   content.NewCleaner(),
		provider:  provider,
		logger:    logger,
		now:       time.Now,
	}
}

// Explain runs the full pipeline for one request.
func (e *Explainer) Explain(ctx context.Context, req *Request) (*Result, error) {
	start := e.now()
	requestID := uuid.NewString()

	logger := e.logger.With(
		"request_id", requestID,
		"model", req.Model,
		"provider", e.provider.Name())

	limiter, ok := e.registry.Get(req.Model)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, req.Model)
	}

	rendered := e.prompts.Build(req.Family, req.Code)
	estimate := e.estimator.EstimatePrompt(rendered, req.MaxTokens, req.Family)

	logger.Debug("Requesting admission",
		"estimated_tokens", estimate,
		"max_tokens", req.MaxTokens)

	admitted, err := limiter.Wait(ctx, estimate)
	if err != nil {
		return nil, fmt.Errorf("rate limit admission: %w", err)
	}
	if !admitted {
		logger.Warn("Admission denied past patience ceiling",
			"estimated_tokens", estimate)
		return nil, fmt.Errorf("%w (model %q)", ErrRateLimited, req.Model)
	}

	resp, err := e.provider.Generate(ctx, &providers.GenerationRequest{
		Prompt:      rendered,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		Stop:        e.prompts.StopSequences(req.Family),
	})
	if err != nil {
		// Nothing is recorded for failed calls; no tokens were consumed.
		return nil, err
	}

	usage := resp.Usage
	if !resp.Exact {
		usage = e.estimateUsage(rendered, resp.Text, req.Family)
	}
	limiter.Record(usage.TotalTokens)

	explanation := e.cleaner.Clean(resp.Text)
	elapsed := e.now().Sub(start)

	logger.Info("Explanation complete",
		"tokens_used", usage.TotalTokens,
		"exact_usage", resp.Exact,
		"elapsed", elapsed)

	return &Result{
		Explanation: explanation,
		Usage:       usage,
		ExactUsage:  resp.Exact,
		Elapsed:     elapsed,
	}, nil
}

// estimateUsage reconstructs usage for providers that do not report it.
func (e *Explainer) estimateUsage(renderedPrompt, output string, family models.Family) providers.TokenUsage {
	promptTokens := e.estimator.EstimateText(renderedPrompt, family)
	completionTokens := e.estimator.EstimateText(output, family)
	return providers.TokenUsage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
	}
}
