package domain

import "errors"

var (
	// ErrEmptyQuery signals an empty or whitespace-only query text.
	ErrEmptyQuery = errors.New("query text is required")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrRetrievalUnavailable signals a vector store failure.
	ErrRetrievalUnavailable = errors.New("retrieval unavailable")
)
