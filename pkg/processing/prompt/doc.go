// Package prompt builds code-explanation prompts per model family.
//
// Each family has its own chat template: Llama and Mistral instruction
// models wrap the request in [INST] markers, Phi models use chat role tags,
// and API models take the bare instruction. The explanation instruction
// itself is shared and explicitly forbids follow-up questions, which the
// content package strips as a second line of defense.
package prompt
