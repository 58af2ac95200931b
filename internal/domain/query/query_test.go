package query

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/kailas-cloud/refsearch/internal/domain"
)

func TestNew_TrimsText(t *testing.T) {
	q, err := New("  ai training pod  ", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text() != "ai training pod" {
		t.Errorf("Text() = %q, want %q", q.Text(), "ai training pod")
	}
	if q.TopK() != 5 {
		t.Errorf("TopK() = %d, want 5", q.TopK())
	}
}

func TestNew_RejectsEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n "} {
		if _, err := New(text, 8); !errors.Is(err, domain.ErrEmptyQuery) {
			t.Errorf("New(%q) error = %v, want ErrEmptyQuery", text, err)
		}
	}
}

func TestClampTopK(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{8, 8},
		{20, 20},
		{21, 20},
		{1000, 20},
	}
	for _, tc := range tests {
		if got := ClampTopK(tc.in); got != tc.want {
			t.Errorf("ClampTopK(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseTopK(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want int
	}{
		{"nil defaults", nil, 8},
		{"float64", float64(5), 5},
		{"float64 zero clamps", float64(0), 1},
		{"float64 negative clamps", float64(-5), 1},
		{"float64 oversized clamps", float64(1000), 20},
		{"nan defaults", math.NaN(), 8},
		{"inf defaults", math.Inf(1), 8},
		{"int", 12, 12},
		{"numeric string", "15", 15},
		{"garbage string defaults", "abc", 8},
		{"json number", json.Number("3"), 3},
		{"bool defaults", true, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseTopK(tc.raw); got != tc.want {
				t.Errorf("ParseTopK(%v) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

// Every coercion path must land inside the hard [1, 20] boundary.
func TestParseTopK_AlwaysBounded(t *testing.T) {
	inputs := []any{nil, -1, 0, 5, 500, float64(-3), math.NaN(), "x", "9999", json.Number("-2")}
	for _, raw := range inputs {
		got := ParseTopK(raw)
		if got < MinTopK || got > MaxTopK {
			t.Errorf("ParseTopK(%v) = %d, outside [%d, %d]", raw, got, MinTopK, MaxTopK)
		}
	}
}
