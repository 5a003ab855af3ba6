package product

import (
	"context"

	"demo-api/internal/shared/query"
)

// Service defines business operations for products.
type Service interface {
	// List applies the category (exact, case-insensitive) and q (name,
	// description) filters, newest first.
	List(ctx context.Context, q query.ListQuery) ([]Product, query.Meta, error)

	// Errors: ErrProductNotFound
	GetByID(ctx context.Context, id string) (*Product, error)

	// Errors: validation
	Create(ctx context.Context, req CreateProductRequest) (*Product, error)

	// Errors: validation, ErrProductNotFound
	Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)

	// Errors: ErrProductNotFound
	Delete(ctx context.Context, id string) error
}
