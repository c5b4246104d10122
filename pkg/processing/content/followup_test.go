package content

import (
	"strings"
	"testing"
)

func TestClean_RemovesKnownFollowups(t *testing.T) {
	cleaner := NewCleaner()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "specific questions",
			input: "This function sorts a slice.\n\nDo you have any specific questions about the code?",
		},
		{
			name:  "anything else",
			input: "This function sorts a slice.\n\nIs there anything else you'd like me to explain?",
		},
		{
			name:  "let me know",
			input: "This function sorts a slice.\n\nLet me know if you need any clarification.",
		},
		{
			name:  "happy to discuss",
			input: "This function sorts a slice.\n\nI'd be happy to discuss any parts in more detail.",
		},
		{
			name:  "case insensitive",
			input: "This function sorts a slice.\n\nHOW WOULD YOU LIKE TO PROCEED?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleaner.Clean(tt.input)
			if got != "This function sorts a slice." {
				t.Errorf("Clean(%q) = %q", tt.input, got)
			}
		})
	}
}

func TestClean_TrimsTrailingQuestions(t *testing.T) {
	cleaner := NewCleaner()

	input := "The code implements a parser.\nIt handles nested brackets.\nWhat would you like to see next?"
	got := cleaner.Clean(input)
	if strings.Contains(got, "What would you like") {
		t.Errorf("Trailing question not trimmed: %q", got)
	}
	if !strings.Contains(got, "nested brackets") {
		t.Errorf("Explanation body lost: %q", got)
	}
}

func TestClean_CollapsesBlankRuns(t *testing.T) {
	cleaner := NewCleaner()

	input := "First paragraph.\n\n\n\nSecond paragraph."
	got := cleaner.Clean(input)
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("Blank runs not collapsed: %q", got)
	}
	if !strings.Contains(got, "First paragraph.") || !strings.Contains(got, "Second paragraph.") {
		t.Errorf("Content lost: %q", got)
	}
}

func TestClean_PreservesCleanText(t *testing.T) {
	cleaner := NewCleaner()

	input := "This code implements binary search.\n\nIt runs in O(log n) time."
	if got := cleaner.Clean(input); got != input {
		t.Errorf("Clean text modified: %q", got)
	}
}

func TestClean_EmptyInput(t *testing.T) {
	cleaner := NewCleaner()
	if got := cleaner.Clean(""); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}
