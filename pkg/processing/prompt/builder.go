package prompt

import (
	"fmt"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/models"
)

// instruction is the shared explanation request embedded in every template.
const instruction = `You are an expert programmer tasked with explaining code. Below is a code snippet that needs explanation.
Please provide a clear, concise explanation of what this code does, including:
1. Overall purpose
2. Key components and their functions
3. Notable techniques or patterns used
4. Any potential issues or improvements

DO NOT ask any follow-up questions at the end of your response. Provide a complete explanation without prompting for more information.

Code to explain:
` + "```" + `
%s
` + "```"

// Builder renders family-specific prompts for code explanation.
type Builder struct{}

// NewBuilder creates a prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the explanation prompt for code in the given family's chat
// template.
func (b *Builder) Build(family models.Family, code string) string {
	body := fmt.Sprintf(instruction, code)

	switch family {
	case models.FamilyLlama, models.FamilyMistral:
		return "<s>[INST] " + body + "\n[/INST]\n"
	case models.FamilyPhi:
		return "<|user|>\n" + body + "\n<|assistant|>\n"
	case models.FamilyClaude:
		return body
	default:
		return body + "\n\nExplanation:\n"
	}
}

// StopSequences returns the generation stop sequences for a family.
// API models stop on their own; local engines need explicit sentinels.
func (b *Builder) StopSequences(family models.Family) []string {
	switch family {
	case models.FamilyClaude:
		return nil
	case models.FamilyPhi:
		return []string{"```", "<|endoftext|>", "<|user|>"}
	default:
		return []string{"```", "<|endoftext|>", "</s>", "<|user|>"}
	}
}
