// Package highlight marks query-derived keywords inside display text.
//
// Matching is whole-word and case-insensitive: the target text is
// tokenized into word and non-word rune runs, and each word run is
// tested for membership in the extracted keyword set. The produced
// segments are a lossless partition of the input, so concatenating
// segment texts in order reproduces the original string exactly.
package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMinKeywordLength is the minimum keyword length in runes.
const DefaultMinKeywordLength = 3

// defaultStopwords are common short English function words excluded
// from keyword extraction.
var defaultStopwords = []string{
	"the", "and", "for", "are", "but", "not", "you", "all", "can",
	"her", "was", "one", "our", "out", "day", "get", "has", "him",
	"his", "how", "its", "may", "new", "now", "old", "see", "two",
	"way", "who", "boy", "did", "let", "put", "say", "she", "too",
	"use", "with",
}

// DefaultStopwords returns a copy of the built-in stopword list.
func DefaultStopwords() []string {
	out := make([]string, len(defaultStopwords))
	copy(out, defaultStopwords)
	return out
}

// Segment is one piece of the partitioned text. Keyword segments are
// the pieces that matched an extracted keyword.
type Segment struct {
	Text    string
	Keyword bool
}

// Highlighter extracts keywords from queries and partitions display
// text around them. It is pure and safe for concurrent use.
type Highlighter struct {
	minLen    int
	stopwords map[string]struct{}
}

// New creates a Highlighter. minLen <= 0 selects
// DefaultMinKeywordLength; a nil stopword list selects the built-in
// one. An explicitly empty list disables stopword filtering.
func New(minLen int, stopwords []string) *Highlighter {
	if minLen <= 0 {
		minLen = DefaultMinKeywordLength
	}
	if stopwords == nil {
		stopwords = defaultStopwords
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Highlighter{minLen: minLen, stopwords: set}
}

// Keywords extracts lowercase keywords from query text: split on
// whitespace runs, keep tokens of at least the minimum length, drop
// stopwords, deduplicate preserving first occurrence order.
func (h *Highlighter) Keywords(queryText string) []string {
	fields := strings.Fields(strings.ToLower(queryText))

	var keywords []string
	seen := make(map[string]struct{}, len(fields))
	for _, tok := range fields {
		if utf8.RuneCountInString(tok) < h.minLen {
			continue
		}
		if _, stop := h.stopwords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}
	return keywords
}

// Apply partitions text into segments, marking whole-word,
// case-insensitive occurrences of keywords extracted from queryText.
// When no keywords survive extraction the whole text is returned as a
// single plain segment. No character of the input is altered, dropped,
// or reordered.
func (h *Highlighter) Apply(text, queryText string) []Segment {
	keywords := h.Keywords(queryText)
	if len(keywords) == 0 {
		return []Segment{{Text: text}}
	}

	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		set[k] = struct{}{}
	}

	var segments []Segment
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			segments = append(segments, Segment{Text: plain.String()})
			plain.Reset()
		}
	}

	rest := text
	for rest != "" {
		run, isWord := nextRun(rest)
		rest = rest[len(run):]

		if isWord {
			if _, ok := set[strings.ToLower(run)]; ok {
				flushPlain()
				segments = append(segments, Segment{Text: run, Keyword: true})
				continue
			}
		}
		plain.WriteString(run)
	}
	flushPlain()

	if len(segments) == 0 {
		return []Segment{{Text: text}}
	}
	return segments
}

// nextRun returns the leading run of s consisting entirely of word or
// entirely of non-word runes, and whether it is a word run.
func nextRun(s string) (string, bool) {
	first, _ := utf8.DecodeRuneInString(s)
	isWord := isWordRune(first)
	for i, r := range s {
		if isWordRune(r) != isWord {
			return s[:i], isWord
		}
	}
	return s, isWord
}

// isWordRune mirrors \w boundaries: letters, digits, underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
