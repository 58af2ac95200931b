package highlight

import (
	"strings"
	"testing"
)

func defaultHighlighter() *Highlighter {
	return New(0, nil)
}

func joinSegments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func keywordTexts(segs []Segment) []string {
	var out []string
	for _, s := range segs {
		if s.Keyword {
			out = append(out, s.Text)
		}
	}
	return out
}

func TestKeywords_Extraction(t *testing.T) {
	h := defaultHighlighter()

	got := h.Keywords("AI training pod design with UCS and Nexus")
	want := []string{"training", "pod", "design", "ucs", "nexus"}
	if len(got) != len(want) {
		t.Fatalf("Keywords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keywords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKeywords_DropsShortTokensAndStopwords(t *testing.T) {
	h := defaultHighlighter()

	tests := []struct {
		query string
		want  int
	}{
		{"AI ML io", 0},          // all below minimum length
		{"the and for", 0},       // all stopwords
		{"", 0},                  // empty
		{"   \t  ", 0},           // whitespace only
		{"nexus nexus NEXUS", 1}, // deduplicated
	}
	for _, tc := range tests {
		if got := h.Keywords(tc.query); len(got) != tc.want {
			t.Errorf("Keywords(%q) = %v, want %d keywords", tc.query, got, tc.want)
		}
	}
}

func TestApply_ConcreteScenario(t *testing.T) {
	h := defaultHighlighter()
	abstract := "A reference design for an AI training pod using UCS hardware and Nexus switching."
	query := "AI training pod design with UCS and Nexus"

	segs := h.Apply(abstract, query)

	if got := joinSegments(segs); got != abstract {
		t.Fatalf("segments are not a lossless partition:\n got %q\nwant %q", got, abstract)
	}

	marked := keywordTexts(segs)
	want := []string{"design", "training", "pod", "UCS", "Nexus"}
	if len(marked) != len(want) {
		t.Fatalf("keyword segments = %v, want %v", marked, want)
	}
	for i, w := range want {
		if marked[i] != w {
			t.Errorf("keyword segment[%d] = %q, want %q", i, marked[i], w)
		}
	}
	// "AI" is below the minimum keyword length and must stay plain.
	for _, s := range segs {
		if s.Keyword && strings.EqualFold(s.Text, "ai") {
			t.Errorf("%q should not be marked as a keyword", s.Text)
		}
	}
}

func TestApply_LosslessPartition(t *testing.T) {
	h := defaultHighlighter()
	texts := []string{
		"",
		"plain text without any match",
		"Nexus at the start",
		"ends with Nexus",
		"Nexus",
		"nexus,nexus;NEXUS!",
		"tabs\tand\nnewlines around nexus here",
		"unicode: сеть Nexus коммутация",
		"punctuation (Nexus) [pod] {design}...",
	}
	queries := []string{
		"Nexus pod design",
		"",
		"ai",
		"the and for",
		"NEXUS",
	}
	for _, text := range texts {
		for _, q := range queries {
			segs := h.Apply(text, q)
			if got := joinSegments(segs); got != text {
				t.Errorf("Apply(%q, %q) lost characters:\n got %q", text, q, got)
			}
		}
	}
}

func TestApply_NoKeywordsIsNoOp(t *testing.T) {
	h := defaultHighlighter()
	text := "Anything at all, even containing the word the."

	for _, q := range []string{"", "ai io", "the and for", "  "} {
		segs := h.Apply(text, q)
		if len(segs) != 1 {
			t.Fatalf("Apply(text, %q) = %d segments, want 1", q, len(segs))
		}
		if segs[0].Keyword {
			t.Errorf("Apply(text, %q) marked the whole text as keyword", q)
		}
		if segs[0].Text != text {
			t.Errorf("Apply(text, %q) altered the text", q)
		}
	}
}

func TestApply_CaseInsensitive(t *testing.T) {
	h := defaultHighlighter()
	text := "nexus NEXUS Nexus nExUs"

	segs := h.Apply(text, "Nexus")

	marked := keywordTexts(segs)
	if len(marked) != 4 {
		t.Fatalf("expected 4 keyword segments, got %v", marked)
	}
	// Original casing must be preserved in the output.
	want := []string{"nexus", "NEXUS", "Nexus", "nExUs"}
	for i, w := range want {
		if marked[i] != w {
			t.Errorf("keyword segment[%d] = %q, want %q", i, marked[i], w)
		}
	}
}

func TestApply_WholeWordOnly(t *testing.T) {
	h := defaultHighlighter()

	segs := h.Apply("podcasts about pod design, maintained", "pod main design")
	if got := joinSegments(segs); got != "podcasts about pod design, maintained" {
		t.Fatalf("lossless partition violated: %q", got)
	}

	marked := keywordTexts(segs)
	want := []string{"pod", "design"}
	if len(marked) != len(want) {
		t.Fatalf("keyword segments = %v, want %v", marked, want)
	}
	for i, w := range want {
		if marked[i] != w {
			t.Errorf("keyword segment[%d] = %q, want %q", i, marked[i], w)
		}
	}
}

func TestApply_AdjacentKeywords(t *testing.T) {
	h := defaultHighlighter()

	segs := h.Apply("nexus,pod nexus", "nexus pod")

	wantSegs := []Segment{
		{Text: "nexus", Keyword: true},
		{Text: ","},
		{Text: "pod", Keyword: true},
		{Text: " "},
		{Text: "nexus", Keyword: true},
	}
	if len(segs) != len(wantSegs) {
		t.Fatalf("segments = %+v, want %+v", segs, wantSegs)
	}
	for i, w := range wantSegs {
		if segs[i] != w {
			t.Errorf("segment[%d] = %+v, want %+v", i, segs[i], w)
		}
	}
}

func TestNew_CustomConfiguration(t *testing.T) {
	h := New(2, []string{"of"})

	got := h.Keywords("of io UCS")
	want := []string{"io", "ucs"}
	if len(got) != len(want) {
		t.Fatalf("Keywords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keywords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Empty (non-nil) stopword list disables filtering entirely.
	h = New(3, []string{})
	if got := h.Keywords("the design"); len(got) != 2 {
		t.Errorf("Keywords() with empty stopwords = %v, want 2 tokens", got)
	}
}
