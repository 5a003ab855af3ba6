package repository

import (
	"context"
	"fmt"
	"strings"

	"demo-api/internal/domains/user"
	"demo-api/internal/store"
)

// memoryRepository implements user.Repository on a store.Collection.
type memoryRepository struct {
	users *store.Collection[user.User, *user.User]
}

// NewMemoryRepository creates a user repository backed by an in-memory collection.
func NewMemoryRepository(opts store.Options) user.Repository {
	return &memoryRepository{
		users: store.NewCollection[user.User](opts),
	}
}

func (r *memoryRepository) FindAll(_ context.Context) ([]user.User, error) {
	return r.users.FindAll(), nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*user.User, error) {
	u, ok := r.users.FindByID(id)
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	matches := r.users.FindBy(func(u user.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if len(matches) == 0 {
		return nil, user.ErrUserNotFound
	}
	return &matches[0], nil
}

func (r *memoryRepository) Create(_ context.Context, u user.User) (*user.User, error) {
	created := r.users.Create(u)
	return &created, nil
}

func (r *memoryRepository) Insert(_ context.Context, u user.User) (*user.User, error) {
	inserted, err := r.users.Insert(u)
	if err != nil {
		return nil, fmt.Errorf("insert user %s: %w", u.ID, err)
	}
	return &inserted, nil
}

func (r *memoryRepository) Update(_ context.Context, id string, req user.UpdateUserRequest) (*user.User, error) {
	updated, ok := r.users.Update(id, req.ApplyTo)
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &updated, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if !r.users.Delete(id) {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *memoryRepository) Version() uint64 {
	return r.users.Version()
}
