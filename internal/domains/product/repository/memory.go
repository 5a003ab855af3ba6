package repository

import (
	"context"
	"fmt"
	"strings"

	"demo-api/internal/domains/product"
	"demo-api/internal/store"
)

type memoryRepository struct {
	products *store.Collection[product.Product, *product.Product]
}

// NewMemoryRepository creates a product repository backed by an in-memory collection.
func NewMemoryRepository(opts store.Options) product.Repository {
	return &memoryRepository{
		products: store.NewCollection[product.Product](opts),
	}
}

func (r *memoryRepository) FindAll(_ context.Context) ([]product.Product, error) {
	return r.products.FindAll(), nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := r.products.FindByID(id)
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return &p, nil
}

func (r *memoryRepository) FindByCategory(_ context.Context, category string) ([]product.Product, error) {
	return r.products.FindBy(func(p product.Product) bool {
		return strings.EqualFold(p.Category, category)
	}), nil
}

func (r *memoryRepository) Create(_ context.Context, p product.Product) (*product.Product, error) {
	created := r.products.Create(p)
	return &created, nil
}

func (r *memoryRepository) Insert(_ context.Context, p product.Product) (*product.Product, error) {
	inserted, err := r.products.Insert(p)
	if err != nil {
		return nil, fmt.Errorf("insert product %s: %w", p.ID, err)
	}
	return &inserted, nil
}

func (r *memoryRepository) Update(_ context.Context, id string, req product.UpdateProductRequest) (*product.Product, error) {
	updated, ok := r.products.Update(id, req.ApplyTo)
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return &updated, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if !r.products.Delete(id) {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *memoryRepository) Version() uint64 {
	return r.products.Version()
}
