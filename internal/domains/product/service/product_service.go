package service

import (
	"context"
	"time"

	"demo-api/internal/domains/product"
	"demo-api/internal/shared/apperror"
	"demo-api/internal/shared/query"
	"demo-api/pkg/logger"
)

// productService implements product.Service
type productService struct {
	repo product.Repository
}

// NewProductService creates a new product service instance
func NewProductService(repo product.Repository) product.Service {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context, q query.ListQuery) ([]product.Product, query.Meta, error) {
	var (
		products []product.Product
		err      error
	)
	if q.Category != "" {
		products, err = s.repo.FindByCategory(ctx, q.Category)
	} else {
		products, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, query.Meta{}, err
	}

	var keep func(product.Product) bool
	if q.Q != "" {
		keep = func(p product.Product) bool {
			return query.AnyContainsFold(q.Q, p.Name, p.Description)
		}
	}

	page, meta := query.List(products, keep, func(p product.Product) time.Time { return p.CreatedAt }, q.Pagination)
	return page, meta, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*product.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, req product.CreateProductRequest) (*product.Product, error) {
	req.Normalize()
	if err := apperror.FromValidation(req.Validate()); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	logger.Info("Product created", map[string]interface{}{"id": created.ID, "category": created.Category})
	return created, nil
}

func (s *productService) Update(ctx context.Context, id string, req product.UpdateProductRequest) (*product.Product, error) {
	req.Normalize()
	if err := apperror.FromValidation(req.Validate()); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Product deleted", map[string]interface{}{"id": id})
	return nil
}
