// Package sanitize neutralizes prompt-injection phrases in user-supplied
// free text before it is interpolated into an LLM prompt. This is a
// defense-in-depth heuristic, not a guarantee: the model-facing prompt
// still instructs the model to treat the text as content, not commands.
package sanitize

import (
	"regexp"
	"strings"
)

// FilteredMarker replaces every matched injection phrase.
const FilteredMarker = "[FILTERED]"

// injectionPatterns are applied in order, case-insensitively. Keep new
// entries anchored to concrete phrasings; overly broad patterns mangle
// legitimate prose.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?(previous|above|prior)\s+(instructions?|prompts?|rules?)`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?(previous|above|prior)\s+(instructions?|prompts?|rules?)`),
	regexp.MustCompile(`(?i)forget\s+(all\s+)?(previous|above|prior)\s+(instructions?|prompts?|rules?)`),
	regexp.MustCompile(`(?i)you\s+are\s+now\s+`),
	regexp.MustCompile(`(?i)act\s+as\s+if\s+`),
	regexp.MustCompile(`(?i)pretend\s+(you\s+are|to\s+be)\s+`),
	regexp.MustCompile(`(?i)new\s+instructions?:`),
	regexp.MustCompile(`(?i)system\s*:\s*`),
	regexp.MustCompile(`(?i)assistant\s*:\s*`),
	regexp.MustCompile(`(?i)\[INST\]`),
	regexp.MustCompile(`(?i)\[/INST\]`),
	regexp.MustCompile(`(?i)<\|im_start\|>`),
	regexp.MustCompile(`(?i)<\|im_end\|>`),
	regexp.MustCompile(`(?i)<<SYS>>`),
	regexp.MustCompile(`(?i)<</SYS>>`),
}

// UserInput truncates text to maxLength characters, replaces known
// injection phrases with FilteredMarker, and trims surrounding
// whitespace. It never fails; empty input yields an empty string.
// Re-running it on its own output changes nothing beyond whitespace.
func UserInput(text string, maxLength int) string {
	if text == "" {
		return ""
	}

	// Truncate by characters, not bytes, before scanning.
	runes := []rune(text)
	if len(runes) > maxLength {
		text = string(runes[:maxLength])
	}

	for _, pattern := range injectionPatterns {
		text = pattern.ReplaceAllString(text, FilteredMarker)
	}

	return strings.TrimSpace(text)
}
