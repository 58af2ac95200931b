package search

import (
	"context"

	"github.com/kailas-cloud/refsearch/internal/domain"
	"github.com/kailas-cloud/refsearch/internal/domain/match"
)

// Retriever fetches the nearest guide records for a query vector.
type Retriever interface {
	Nearest(ctx context.Context, vector []float32, limit int) ([]match.Match, error)
}

// Embedder vectorizes query text into an embedding.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
