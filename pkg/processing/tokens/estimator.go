package tokens

import (
	"strings"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/models"
)

// Estimator estimates token counts for text.
// Implementations may use different algorithms (character-ratio, BPE, ...).
type Estimator interface {
	// EstimateText estimates tokens for a single text string.
	EstimateText(text string, family models.Family) int

	// EstimatePrompt estimates the total cost of a generation: prompt tokens
	// plus the completion budget the caller intends to allow.
	EstimatePrompt(prompt string, maxTokens int, family models.Family) int
}

// defaultCharsPerToken is used for families without a configured ratio.
const defaultCharsPerToken = 4.0

// SimpleEstimator implements character-ratio token estimation with a
// word-count floor.
type SimpleEstimator struct {
	// charsPerToken maps model families to their characters-per-token ratio.
	charsPerToken map[models.Family]float64
}

// NewSimpleEstimator creates an estimator with built-in family ratios.
// Custom ratios override the built-ins for the families they name.
func NewSimpleEstimator(overrides map[models.Family]float64) *SimpleEstimator {
	ratios := map[models.Family]float64{
		models.FamilyLlama:   3.6,
		models.FamilyMistral: 3.6,
		models.FamilyPhi:     3.8,
		models.FamilyGPTNeoX: 4.0,
		models.FamilyClaude:  3.5,
	}
	for family, ratio := range overrides {
		if ratio > 0 {
			ratios[family] = ratio
		}
	}
	return &SimpleEstimator{charsPerToken: ratios}
}

// EstimateText estimates tokens for a single text string.
// Non-empty text estimates at least one token.
func (e *SimpleEstimator) EstimateText(text string, family models.Family) int {
	if text == "" {
		return 0
	}

	ratio, ok := e.charsPerToken[family]
	if !ok {
		ratio = defaultCharsPerToken
	}

	estimate := int(float64(len(text))/ratio + 0.5)

	// Whitespace-heavy or symbol-dense text tokenizes near one token per
	// word; never estimate below that.
	if words := len(strings.Fields(text)); estimate < words {
		estimate = words
	}

	if estimate < 1 {
		estimate = 1
	}
	return estimate
}

// EstimatePrompt estimates the total token cost of a generation request:
// the prompt itself plus the completion budget.
func (e *SimpleEstimator) EstimatePrompt(prompt string, maxTokens int, family models.Family) int {
	if maxTokens < 0 {
		maxTokens = 0
	}
	return e.EstimateText(prompt, family) + maxTokens
}
