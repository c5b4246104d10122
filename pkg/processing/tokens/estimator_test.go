package tokens

import (
	"strings"
	"testing"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/models"
)

func TestEstimateText_Empty(t *testing.T) {
	e := NewSimpleEstimator(nil)
	if got := e.EstimateText("", models.FamilyClaude); got != 0 {
		t.Errorf("Expected 0 tokens for empty text, got %d", got)
	}
}

func TestEstimateText_MinimumOneToken(t *testing.T) {
	e := NewSimpleEstimator(nil)
	if got := e.EstimateText("x", models.FamilyClaude); got < 1 {
		t.Errorf("Expected at least 1 token, got %d", got)
	}
}

func TestEstimateText_ScalesWithLength(t *testing.T) {
	e := NewSimpleEstimator(nil)

	short := e.EstimateText(strings.Repeat("a", 100), models.FamilyClaude)
	long := e.EstimateText(strings.Repeat("a", 1000), models.FamilyClaude)
	if long <= short {
		t.Errorf("Expected longer text to estimate more tokens: %d vs %d", short, long)
	}

	// 3.5 chars/token ratio: 700 chars ≈ 200 tokens.
	got := e.EstimateText(strings.Repeat("a", 700), models.FamilyClaude)
	if got < 180 || got > 220 {
		t.Errorf("Expected ~200 tokens for 700 chars, got %d", got)
	}
}

func TestEstimateText_WordCountFloor(t *testing.T) {
	e := NewSimpleEstimator(nil)

	// 50 one-character words: 99 chars, far fewer by ratio than by words.
	text := strings.TrimSpace(strings.Repeat("x ", 50))
	if got := e.EstimateText(text, models.FamilyClaude); got < 50 {
		t.Errorf("Expected word-count floor of 50, got %d", got)
	}
}

func TestEstimateText_UnknownFamilyUsesDefault(t *testing.T) {
	e := NewSimpleEstimator(nil)
	if got := e.EstimateText(strings.Repeat("a", 400), models.Family("other")); got < 90 || got > 110 {
		t.Errorf("Expected ~100 tokens at default ratio, got %d", got)
	}
}

func TestEstimatePrompt_AddsCompletionBudget(t *testing.T) {
	e := NewSimpleEstimator(nil)

	prompt := strings.Repeat("a", 350)
	base := e.EstimateText(prompt, models.FamilyClaude)
	got := e.EstimatePrompt(prompt, 1024, models.FamilyClaude)
	if got != base+1024 {
		t.Errorf("Expected %d, got %d", base+1024, got)
	}

	if got := e.EstimatePrompt(prompt, -5, models.FamilyClaude); got != base {
		t.Errorf("Expected negative budget clamped: want %d, got %d", base, got)
	}
}

func TestNewSimpleEstimator_Overrides(t *testing.T) {
	e := NewSimpleEstimator(map[models.Family]float64{
		models.FamilyClaude: 7.0,
	})

	got := e.EstimateText(strings.Repeat("a", 700), models.FamilyClaude)
	if got != 100 {
		t.Errorf("Expected 100 tokens at 7.0 chars/token, got %d", got)
	}
}
