// Package match holds the retrieved document hit model.
package match

// Match is a single retrieval hit. Score is a similarity value, higher
// means more relevant. GuideType is an open label set ("CVD",
// "White Paper", "Integration Guide", ...) or empty.
type Match struct {
	url       string
	abstract  string
	score     float64
	guideType string
}

// New creates a match.
func New(url, abstract string, score float64, guideType string) Match {
	return Match{url: url, abstract: abstract, score: score, guideType: guideType}
}

// URL returns the document URL.
func (m *Match) URL() string { return m.url }

// Abstract returns the one-line abstract summary.
func (m *Match) Abstract() string { return m.abstract }

// Score returns the similarity score.
func (m *Match) Score() float64 { return m.score }

// GuideType returns the guide type label, empty when unknown.
func (m *Match) GuideType() string { return m.guideType }
