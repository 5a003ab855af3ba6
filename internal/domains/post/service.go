package post

import (
	"context"

	"demo-api/internal/shared/query"
)

// Service defines business operations for posts.
type Service interface {
	// List applies the published and q (title, content) filters, newest first.
	List(ctx context.Context, q query.ListQuery) ([]Post, query.Meta, error)

	// ListByAuthor lists the posts of an existing user, newest first.
	// Errors: user.ErrUserNotFound
	ListByAuthor(ctx context.Context, authorID string, p query.Pagination) ([]Post, query.Meta, error)

	// GetByID returns the post with its author summary.
	// Errors: ErrPostNotFound
	GetByID(ctx context.Context, id string) (*Detail, error)

	// Create requires the author to exist.
	// Errors: validation, ErrAuthorNotFound
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)

	// Errors: validation, ErrPostNotFound
	Update(ctx context.Context, id string, req UpdatePostRequest) (*Post, error)

	// Errors: ErrPostNotFound
	Delete(ctx context.Context, id string) error
}
