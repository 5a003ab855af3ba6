package service

import (
	"context"
	"sort"
	"strings"

	"demo-api/internal/domains/post"
	"demo-api/internal/domains/product"
	"demo-api/internal/domains/search"
	"demo-api/internal/domains/user"
	"demo-api/internal/shared/query"
	"demo-api/pkg/logger"
)

type searchService struct {
	users    user.Repository
	posts    post.Repository
	products product.Repository
}

// NewSearchService creates the global search service.
func NewSearchService(users user.Repository, posts post.Repository, products product.Repository) search.Service {
	return &searchService{
		users:    users,
		posts:    posts,
		products: products,
	}
}

func (s *searchService) Search(ctx context.Context, q string, p query.Pagination) ([]search.Hit, query.Meta, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []search.Hit{}, query.Meta{}, nil
	}

	hits, err := s.collect(ctx, q)
	if err != nil {
		return nil, query.Meta{}, err
	}

	// stable: equal scores keep users, posts, products in collection order
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Relevance > hits[j].Relevance
	})

	logger.Debug("Search executed", map[string]interface{}{"query": q, "hits": len(hits)})

	page, meta := query.Paginate(hits, p)
	return page, meta, nil
}

func (s *searchService) collect(ctx context.Context, q string) ([]search.Hit, error) {
	var hits []search.Hit
	add := func(typ string, item interface{}, fields ...string) {
		if score := query.Relevance(q, fields...); score > 0 {
			hits = append(hits, search.Hit{Type: typ, Relevance: score, Item: item})
		}
	}

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		add(search.TypeUser, u, u.Name, u.Email)
	}

	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		add(search.TypePost, p, p.Title, p.Content)
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		add(search.TypeProduct, p, p.Name, p.Description, p.Category)
	}

	return hits, nil
}
