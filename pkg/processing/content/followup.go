package content

import (
	"regexp"
	"strings"
)

// followupPatterns match common follow-up question phrasings. Compiled once
// at package load; all are applied case-insensitively.
var followupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Do you have any (specific|particular) questions about (the|this) code\?`),
	regexp.MustCompile(`(?i)Is there anything (specific|particular|else) you'd like me to (explain|clarify|elaborate on)\?`),
	regexp.MustCompile(`(?i)Would you like me to (explain|elaborate on) any (specific|particular) part (of the code|in more detail)\?`),
	regexp.MustCompile(`(?i)Let me know if you (need|want|have|would like) (any|more) (clarification|explanation|details|information)\.`),
	regexp.MustCompile(`(?i)If you have any (questions|concerns), (feel free to|please) (ask|let me know)\.`),
	regexp.MustCompile(`(?i)Do you want me to (go into more detail|explain anything further)\?`),
	regexp.MustCompile(`(?i)Is there a (specific|particular) (part|section|aspect|area) (of the code )?(that )?(you're|you are) (curious|interested|confused) about\?`),
	regexp.MustCompile(`(?i)What (specific|particular) (parts|aspects) of (this|the) code (would you like|do you want) (me )?to (focus on|explain|elaborate|clarify)\?`),
	regexp.MustCompile(`(?i)How would you like to (proceed|continue)\?`),
	regexp.MustCompile(`(?i)I'd be happy to (discuss|explain|clarify) (any|specific) (parts|sections|aspects) in more detail\.`),
}

// blankRuns collapses multiple consecutive blank lines left behind after
// pattern removal.
var blankRuns = regexp.MustCompile(`\n\s*\n`)

// trailingQuestionMarkers flag a final line as an interrogative worth
// trimming.
var trailingQuestionMarkers = []string{
	"?", "what", "how", "would you", "do you", "is there", "are there",
}

// Cleaner strips follow-up questions from model output.
type Cleaner struct{}

// NewCleaner creates a cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean removes follow-up questions and normalizes whitespace.
func (c *Cleaner) Clean(text string) string {
	for _, pattern := range followupPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	// Trim trailing lines that still read as questions.
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && isQuestionLine(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	text = strings.Join(lines, "\n")

	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// isQuestionLine reports whether a line contains an interrogative marker.
func isQuestionLine(line string) bool {
	lower := strings.ToLower(line)
	if strings.TrimSpace(lower) == "" {
		return false
	}
	for _, marker := range trailingQuestionMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
