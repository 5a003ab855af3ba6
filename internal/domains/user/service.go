package user

import (
	"context"

	"demo-api/internal/shared/query"
)

// Service defines business operations for users.
type Service interface {
	// List filters by q (name, email), newest first, paginated.
	List(ctx context.Context, q query.ListQuery) ([]User, query.Meta, error)

	// GetByID errors: ErrUserNotFound
	GetByID(ctx context.Context, id string) (*User, error)

	// Create validates the request and rejects duplicate emails.
	// Errors: validation, ErrEmailAlreadyExists
	Create(ctx context.Context, req CreateUserRequest) (*User, error)

	// Update merges the set fields. Changing the email to one held by another
	// user is rejected.
	// Errors: validation, ErrUserNotFound, ErrEmailAlreadyExists
	Update(ctx context.Context, id string, req UpdateUserRequest) (*User, error)

	// Delete does not touch posts referencing the user.
	// Errors: ErrUserNotFound
	Delete(ctx context.Context, id string) error
}
