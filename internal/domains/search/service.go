package search

import (
	"context"

	"demo-api/internal/shared/query"
)

// Service runs the global search across users, posts and products.
type Service interface {
	// Search ranks every record whose relevance to q is positive, highest
	// first. A blank q yields an empty result and no error.
	Search(ctx context.Context, q string, p query.Pagination) ([]Hit, query.Meta, error)
}
