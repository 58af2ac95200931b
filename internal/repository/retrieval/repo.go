// Package retrieval maps vector store hits into domain matches.
package retrieval

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/refsearch/internal/db"
	"github.com/kailas-cloud/refsearch/internal/domain"
	"github.com/kailas-cloud/refsearch/internal/domain/match"
	"github.com/kailas-cloud/refsearch/internal/metrics"
)

// store is the consumer interface for retrieval operations (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// returnFields are the corpus index fields projected into each hit.
var returnFields = []string{"url", "abstract", "guide_type"}

// Repo implements usecase/search.Retriever over a vector store index.
type Repo struct {
	store  store
	index  string
	driver string
}

// New creates a retrieval repository against the named FT index.
// driver labels metrics only.
func New(s store, index, driver string) *Repo {
	return &Repo{store: s, index: index, driver: driver}
}

// Nearest fetches up to limit candidates ordered by descending
// similarity. The store's ordering is passed through untouched; no
// re-scoring or re-sorting happens here. Zero matches yield an empty
// slice, not an error.
func (r *Repo) Nearest(ctx context.Context, vector []float32, limit int) ([]match.Match, error) {
	q := &db.KNNQuery{
		IndexName:    r.index,
		Vector:       vector,
		K:            limit,
		ReturnFields: returnFields,
	}

	start := time.Now()

	sr, err := r.store.SearchKNN(ctx, q)

	metrics.RetrievalRequestDuration.WithLabelValues(r.driver).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.RetrievalRequestsTotal.WithLabelValues(r.driver, "error").Inc()
		return nil, fmt.Errorf("search knn %s: %w: %w", r.index, domain.ErrRetrievalUnavailable, err)
	}
	metrics.RetrievalRequestsTotal.WithLabelValues(r.driver, "success").Inc()

	matches := make([]match.Match, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		matches = append(matches, toMatch(entry))
	}
	return matches, nil
}

// toMatch shapes one hit defensively: absent fields coerce to empty
// strings and the record is always emitted, never dropped. A score the
// store could not parse stays at the sentinel value 0.
func toMatch(e db.SearchEntry) match.Match {
	return match.New(
		e.Fields["url"],
		e.Fields["abstract"],
		e.Score,
		e.Fields["guide_type"],
	)
}
