package product

import "context"

// Repository defines data access for products.
// Lookups that miss return ErrProductNotFound.
type Repository interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByCategory matches case-insensitively.
	FindByCategory(ctx context.Context, category string) ([]Product, error)

	Create(ctx context.Context, p Product) (*Product, error)
	Insert(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, id string) error
	Version() uint64
}
