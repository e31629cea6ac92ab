package ai

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kaptinlin/jsonrepair"
)

// ReviewIssue is one anchored finding from a live review. Offsets are
// codepoint (rune) positions into the reviewed content, so editor
// frontends counting characters index the same span; they satisfy
// string([]rune(content)[StartOffset:EndOffset]) == OriginalText.
type ReviewIssue struct {
	OriginalText string `json:"original_text"`
	StartOffset  int    `json:"start_offset"`
	EndOffset    int    `json:"end_offset"`
	Severity     string `json:"severity"`
	IssueType    string `json:"issue_type"`
	Suggestion   string `json:"suggestion"`
	Explanation  string `json:"explanation"`
}

// rawIssue is the shape the model is asked to emit. Missing fields get
// defaults during anchoring.
type rawIssue struct {
	OriginalText string `json:"original_text"`
	Severity     string `json:"severity"`
	IssueType    string `json:"issue_type"`
	Suggestion   string `json:"suggestion"`
	Explanation  string `json:"explanation"`
}

// Greedy on purpose: grabs from the first '[' to the last ']' so prose
// wrapped around the array does not break extraction.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// parseReviewIssues turns a model response into anchored issues. The
// response is parsed best-effort: first the outermost bracketed slice,
// then the whole response, each with a repair pass for truncated or
// malformed JSON. Anything still unparseable yields an empty result
// rather than an error, since a failed review must not fail the caller.
func parseReviewIssues(raw, content string) []ReviewIssue {
	issuesRaw := decodeIssues(raw)

	issues := []ReviewIssue{}
	used := make(map[[2]int]bool)

	for _, issue := range issuesRaw {
		if issue.OriginalText == "" {
			continue
		}

		// Anchor to the first occurrence not already claimed by an
		// earlier issue. Duplicate snippets advance past the taken
		// span and try again. The search runs on bytes; offsets are
		// converted to rune positions at the match.
		searchStart := 0
		for {
			idx := strings.Index(content[searchStart:], issue.OriginalText)
			if idx == -1 {
				break
			}
			byteStart := searchStart + idx
			start := utf8.RuneCountInString(content[:byteStart])
			end := start + utf8.RuneCountInString(issue.OriginalText)

			key := [2]int{start, end}
			if !used[key] {
				used[key] = true
				issues = append(issues, anchoredIssue(issue, start, end))
				break
			}
			searchStart = byteStart + 1
		}
	}

	return issues
}

func decodeIssues(raw string) []rawIssue {
	candidates := []string{}
	if match := jsonArrayPattern.FindString(raw); match != "" {
		candidates = append(candidates, match)
	}
	candidates = append(candidates, strings.TrimSpace(raw))

	for _, candidate := range candidates {
		var issues []rawIssue
		if err := json.Unmarshal([]byte(candidate), &issues); err == nil {
			return issues
		}
		repaired, err := jsonrepair.JSONRepair(candidate)
		if err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(repaired), &issues); err == nil {
			return issues
		}
	}
	return nil
}

func anchoredIssue(issue rawIssue, start, end int) ReviewIssue {
	out := ReviewIssue{
		OriginalText: issue.OriginalText,
		StartOffset:  start,
		EndOffset:    end,
		Severity:     issue.Severity,
		IssueType:    issue.IssueType,
		Suggestion:   issue.Suggestion,
		Explanation:  issue.Explanation,
	}
	if out.Severity == "" {
		out.Severity = "warning"
	}
	if out.IssueType == "" {
		out.IssueType = "style"
	}
	if out.Suggestion == "" {
		out.Suggestion = issue.OriginalText
	}
	return out
}
