package user

import "context"

// Repository defines data access for users.
// Lookups that miss return ErrUserNotFound.
type Repository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create assigns id and timestamps.
	Create(ctx context.Context, u User) (*User, error)

	// Insert keeps the given id; used for seeding.
	Insert(ctx context.Context, u User) (*User, error)

	Update(ctx context.Context, id string, req UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id string) error

	// Version changes whenever the collection is mutated.
	Version() uint64
}
