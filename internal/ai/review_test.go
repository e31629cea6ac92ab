package ai

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseReviewIssues_AnchorsExactOffsets(t *testing.T) {
	content := "Dia berlari. Dia menangis."
	raw := `[{"original_text": "Dia berlari.", "severity": "critical", "issue_type": "grammar", "suggestion": "Ia berlari.", "explanation": "Variasi subjek."}]`

	got := parseReviewIssues(raw, content)
	want := []ReviewIssue{{
		OriginalText: "Dia berlari.",
		StartOffset:  0,
		EndOffset:    12,
		Severity:     "critical",
		IssueType:    "grammar",
		Suggestion:   "Ia berlari.",
		Explanation:  "Variasi subjek.",
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}

	if sub := string([]rune(content)[got[0].StartOffset:got[0].EndOffset]); sub != got[0].OriginalText {
		t.Errorf("offsets do not slice back to original text: %q", sub)
	}
}

func TestParseReviewIssues_OffsetsCountRunes(t *testing.T) {
	// Curly quotes are multi-byte in UTF-8; offsets must count
	// characters, not bytes, so editor clients anchor the same span.
	content := "“Dia berlari,” katanya. Dia menangis."
	raw := `[{"original_text": "Dia menangis."}]`

	got := parseReviewIssues(raw, content)
	if len(got) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(got))
	}

	if got[0].StartOffset != 24 || got[0].EndOffset != 37 {
		t.Errorf("span = (%d,%d), want (24,37)", got[0].StartOffset, got[0].EndOffset)
	}
	if sub := string([]rune(content)[got[0].StartOffset:got[0].EndOffset]); sub != "Dia menangis." {
		t.Errorf("rune slice = %q, want %q", sub, "Dia menangis.")
	}
}

func TestParseReviewIssues_DuplicateSnippetsGetDistinctSpans(t *testing.T) {
	content := "Dia berlari. Dia berlari. Dia berlari."
	raw := `[
		{"original_text": "Dia berlari."},
		{"original_text": "Dia berlari."}
	]`

	got := parseReviewIssues(raw, content)
	if len(got) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(got))
	}

	if got[0].StartOffset != 0 || got[0].EndOffset != 12 {
		t.Errorf("first span = (%d,%d), want (0,12)", got[0].StartOffset, got[0].EndOffset)
	}
	if got[1].StartOffset != 13 || got[1].EndOffset != 25 {
		t.Errorf("second span = (%d,%d), want (13,25)", got[1].StartOffset, got[1].EndOffset)
	}
}

func TestParseReviewIssues_Defaults(t *testing.T) {
	content := "Kalimat yang panjang sekali."
	raw := `[{"original_text": "panjang sekali"}]`

	got := parseReviewIssues(raw, content)
	if len(got) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(got))
	}

	issue := got[0]
	if issue.Severity != "warning" {
		t.Errorf("default severity = %q, want %q", issue.Severity, "warning")
	}
	if issue.IssueType != "style" {
		t.Errorf("default issue_type = %q, want %q", issue.IssueType, "style")
	}
	if issue.Suggestion != "panjang sekali" {
		t.Errorf("default suggestion = %q, want the original text", issue.Suggestion)
	}
	if issue.Explanation != "" {
		t.Errorf("default explanation = %q, want empty", issue.Explanation)
	}
}

func TestParseReviewIssues_SkipsUnanchorable(t *testing.T) {
	content := "Teks pendek."
	raw := `[
		{"original_text": ""},
		{"original_text": "tidak ada di konten"},
		{"original_text": "pendek"}
	]`

	got := parseReviewIssues(raw, content)
	if len(got) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(got))
	}
	if got[0].OriginalText != "pendek" {
		t.Errorf("surviving issue = %q, want %q", got[0].OriginalText, "pendek")
	}
}

func TestParseReviewIssues_ExtractsArrayFromProse(t *testing.T) {
	content := "Dia pergi ke pasar."
	raw := "Berikut hasil analisisnya:\n[{\"original_text\": \"ke pasar\"}]\nSemoga membantu!"

	got := parseReviewIssues(raw, content)
	if len(got) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(got))
	}
}

func TestParseReviewIssues_RepairsMalformedJSON(t *testing.T) {
	content := "Dia pergi ke pasar."
	// Trailing comma is invalid JSON; the repair pass should recover it.
	raw := `[{"original_text": "ke pasar",},]`

	got := parseReviewIssues(raw, content)
	if len(got) != 1 {
		t.Fatalf("expected 1 issue after repair, got %d", len(got))
	}
}

func TestParseReviewIssues_GarbageYieldsEmpty(t *testing.T) {
	cases := []string{
		"",
		"not json at all",
		"Maaf, saya tidak dapat menganalisis teks ini.",
		"{not json at all",
	}

	for _, raw := range cases {
		got := parseReviewIssues(raw, "Teks apa saja.")
		if len(got) != 0 {
			t.Errorf("parseReviewIssues(%q) = %v, want empty", raw, got)
		}
	}
}
