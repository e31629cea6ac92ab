package ai

import (
	"strings"
	"unicode"
)

const maxSuggestedTitles = 5

// parseTitles extracts title candidates from a model response. Only
// lines shaped like list items count (leading digit, dash, or bullet);
// everything else, including blank lines and prose preambles, is
// skipped. At most five titles are returned, in encounter order.
func parseTitles(raw string) []string {
	var titles []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		first := []rune(line)[0]
		if !unicode.IsDigit(first) && first != '-' && first != '•' {
			continue
		}

		title := strings.TrimSpace(strings.TrimLeft(line, "0123456789.-•) "))
		if title != "" {
			titles = append(titles, title)
		}
		if len(titles) == maxSuggestedTitles {
			break
		}
	}
	return titles
}
