package prompt

import (
	"strings"
	"testing"

	"github.com/Amrit27k/CodeExplainer-LLM/pkg/models"
)

func TestBuild_FamilyTemplates(t *testing.T) {
	builder := NewBuilder()
	code := `func main() { fmt.Println("hi") }`

	tests := []struct {
		family      models.Family
		wantPrefix  string
		wantContain []string
		wantAbsent  []string
	}{
		{
			family:      models.FamilyLlama,
			wantPrefix:  "<s>[INST] ",
			wantContain: []string{code, "[/INST]"},
		},
		{
			family:      models.FamilyMistral,
			wantPrefix:  "<s>[INST] ",
			wantContain: []string{code, "[/INST]"},
		},
		{
			family:      models.FamilyPhi,
			wantPrefix:  "<|user|>",
			wantContain: []string{code, "<|assistant|>"},
		},
		{
			family:      models.FamilyClaude,
			wantPrefix:  "You are an expert programmer",
			wantContain: []string{code},
			wantAbsent:  []string{"[INST]", "<|user|>", "Explanation:"},
		},
		{
			family:      models.FamilyGPTNeoX,
			wantPrefix:  "You are an expert programmer",
			wantContain: []string{code, "Explanation:"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.family), func(t *testing.T) {
			got := builder.Build(tt.family, code)

			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("Expected prefix %q, got %q...", tt.wantPrefix, got[:40])
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("Expected prompt to contain %q", want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("Expected prompt not to contain %q", absent)
				}
			}
			if !strings.Contains(got, "DO NOT ask any follow-up questions") {
				t.Error("Expected the no-follow-up instruction in every template")
			}
		})
	}
}

func TestStopSequences(t *testing.T) {
	builder := NewBuilder()

	if got := builder.StopSequences(models.FamilyClaude); got != nil {
		t.Errorf("Expected no stop sequences for claude, got %v", got)
	}

	llama := builder.StopSequences(models.FamilyLlama)
	if len(llama) == 0 {
		t.Fatal("Expected stop sequences for llama")
	}
	found := false
	for _, s := range llama {
		if s == "</s>" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected </s> in llama stop sequences, got %v", llama)
	}
}
