package post

import "context"

// Repository defines data access for posts.
// Lookups that miss return ErrPostNotFound.
type Repository interface {
	FindAll(ctx context.Context) ([]Post, error)
	FindByID(ctx context.Context, id string) (*Post, error)
	FindByAuthor(ctx context.Context, authorID string) ([]Post, error)
	Create(ctx context.Context, p Post) (*Post, error)
	Insert(ctx context.Context, p Post) (*Post, error)
	Update(ctx context.Context, id string, req UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, id string) error
	Version() uint64
}
