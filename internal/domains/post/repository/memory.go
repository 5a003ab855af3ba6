package repository

import (
	"context"
	"fmt"

	"demo-api/internal/domains/post"
	"demo-api/internal/store"
)

type memoryRepository struct {
	posts *store.Collection[post.Post, *post.Post]
}

// NewMemoryRepository creates a post repository backed by an in-memory collection.
func NewMemoryRepository(opts store.Options) post.Repository {
	return &memoryRepository{
		posts: store.NewCollection[post.Post](opts),
	}
}

func (r *memoryRepository) FindAll(_ context.Context) ([]post.Post, error) {
	return r.posts.FindAll(), nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*post.Post, error) {
	p, ok := r.posts.FindByID(id)
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return &p, nil
}

func (r *memoryRepository) FindByAuthor(_ context.Context, authorID string) ([]post.Post, error) {
	return r.posts.FindBy(func(p post.Post) bool {
		return p.AuthorID == authorID
	}), nil
}

func (r *memoryRepository) Create(_ context.Context, p post.Post) (*post.Post, error) {
	created := r.posts.Create(p)
	return &created, nil
}

func (r *memoryRepository) Insert(_ context.Context, p post.Post) (*post.Post, error) {
	inserted, err := r.posts.Insert(p)
	if err != nil {
		return nil, fmt.Errorf("insert post %s: %w", p.ID, err)
	}
	return &inserted, nil
}

func (r *memoryRepository) Update(_ context.Context, id string, req post.UpdatePostRequest) (*post.Post, error) {
	updated, ok := r.posts.Update(id, req.ApplyTo)
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return &updated, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if !r.posts.Delete(id) {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *memoryRepository) Version() uint64 {
	return r.posts.Version()
}
