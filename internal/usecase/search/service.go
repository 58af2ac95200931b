// Package search orchestrates the retrieval pipeline: query validation,
// embedding, vector retrieval, and keyword highlighting.
package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/refsearch/internal/domain/match"
	"github.com/kailas-cloud/refsearch/internal/domain/query"
	"github.com/kailas-cloud/refsearch/internal/highlight"
)

// Result is a single ranked guide with optional highlighting segments.
type Result struct {
	Match    match.Match
	Segments []highlight.Segment
}

// Service handles semantic guide search.
type Service struct {
	retriever   Retriever
	embed       Embedder
	highlighter *highlight.Highlighter
}

// New creates a search service.
func New(retriever Retriever, embed Embedder, hl *highlight.Highlighter) *Service {
	return &Service{retriever: retriever, embed: embed, highlighter: hl}
}

// Search runs the full pipeline for one query. The embedding is produced
// fresh per call and discarded afterwards; ordering of results is exactly
// the store's similarity ordering. When highlightAbstracts is false the
// Segments field of every result is nil.
func (s *Service) Search(ctx context.Context, q query.Query, highlightAbstracts bool) ([]Result, error) {
	embResult, err := s.embed.Embed(ctx, q.Text())
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	matches, err := s.retriever.Nearest(ctx, embResult.Embedding, q.TopK())
	if err != nil {
		return nil, err
	}

	if len(matches) > q.TopK() {
		matches = matches[:q.TopK()]
	}

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		r := Result{Match: m}
		if highlightAbstracts {
			r.Segments = s.highlighter.Apply(m.Abstract(), q.Text())
		}
		results = append(results, r)
	}

	return results, nil
}
