// Package query validates and normalizes inbound search queries.
package query

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/kailas-cloud/refsearch/internal/domain"
)

// Top-k bounds.
const (
	DefaultTopK = 8
	MinTopK     = 1
	MaxTopK     = 20
)

// Query is a validated search query.
type Query struct {
	text string
	topK int
}

// New validates and normalizes query parameters.
// Whitespace-only text is rejected; topK is clamped to [MinTopK, MaxTopK].
func New(text string, topK int) (Query, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Query{}, domain.ErrEmptyQuery
	}
	return Query{text: text, topK: ClampTopK(topK)}, nil
}

// Text returns the trimmed query text.
func (q *Query) Text() string { return q.text }

// TopK returns the effective result limit.
func (q *Query) TopK() int { return q.topK }

// ClampTopK bounds k to the closed interval [MinTopK, MaxTopK].
// Requests for 0, negative, or oversized k are capped, never rejected.
func ClampTopK(k int) int {
	if k < MinTopK {
		return MinTopK
	}
	if k > MaxTopK {
		return MaxTopK
	}
	return k
}

// ParseTopK coerces a loosely typed top-k value to a bounded int.
// Accepts numbers, numeric strings, and json.Number; anything
// unparsable or non-finite falls back to DefaultTopK before clamping.
func ParseTopK(raw any) int {
	switch v := raw.(type) {
	case nil:
		return DefaultTopK
	case int:
		return ClampTopK(v)
	case int64:
		return ClampTopK(int(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return DefaultTopK
		}
		return ClampTopK(int(v))
	case json.Number:
		return parseTopKString(v.String())
	case string:
		return parseTopKString(v)
	default:
		return DefaultTopK
	}
}

func parseTopKString(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultTopK
	}
	return ClampTopK(int(f))
}
