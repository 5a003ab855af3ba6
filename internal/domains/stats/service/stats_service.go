package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"demo-api/internal/domains/post"
	"demo-api/internal/domains/product"
	"demo-api/internal/domains/stats"
	"demo-api/internal/domains/user"
	"demo-api/internal/shared/utils"
	"demo-api/pkg/cache"
	"demo-api/pkg/logger"
)

const cacheKeyPrefix = "stats"

type statsService struct {
	users    user.Repository
	posts    post.Repository
	products product.Repository

	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time

	// instance scopes cache keys to this process; collection versions
	// restart from the same values in every process sharing the cache.
	instance string
}

// NewStatsService creates the stats service. Results are cached in c for ttl
// and keyed by an instance id plus the collection versions, so any write
// produces a fresh key.
// A nil cache disables caching.
func NewStatsService(
	users user.Repository,
	posts post.Repository,
	products product.Repository,
	c cache.Cache,
	ttl time.Duration,
) stats.Service {
	return &statsService{
		users:    users,
		posts:    posts,
		products: products,
		cache:    c,
		ttl:      ttl,
		now:      time.Now,
		instance: uuid.NewString(),
	}
}

func (s *statsService) Get(ctx context.Context) (*stats.Stats, error) {
	cacheKey := s.cacheKey()

	if s.cache != nil {
		var cached stats.Stats
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			// degrade to computing on every request
			logger.Warn("Stats cache read failed", err)
		}
		if found {
			return &cached, nil
		}
	}

	result, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result, s.ttl); err != nil {
			logger.Warn("Stats cache write failed", err)
		}
	}
	return result, nil
}

func (s *statsService) cacheKey() string {
	return fmt.Sprintf("%s:%s:%d:%d:%d", cacheKeyPrefix, s.instance, s.users.Version(), s.posts.Version(), s.products.Version())
}

func (s *statsService) compute(ctx context.Context) (*stats.Stats, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	since := now.Add(-stats.RecentWindow)

	result := &stats.Stats{
		Users: stats.UserStats{Total: len(users)},
		Posts: stats.PostStats{Total: len(posts)},
		Products: stats.ProductStats{
			Total:      len(products),
			ByCategory: make(map[string]int),
		},
		Overview: stats.Overview{
			TotalEntities: len(users) + len(posts) + len(products),
			LastUpdated:   now,
		},
	}

	for _, u := range users {
		if u.CreatedAt.After(since) {
			result.Users.Recent++
		}
	}

	for _, p := range posts {
		if p.Published {
			result.Posts.Published++
		} else {
			result.Posts.Draft++
		}
		if p.CreatedAt.After(since) {
			result.Posts.Recent++
		}
	}

	prices := make([]float64, 0, len(products))
	for _, p := range products {
		if p.InStock {
			result.Products.InStock++
		} else {
			result.Products.OutOfStock++
		}
		result.Products.ByCategory[p.Category]++
		prices = append(prices, p.Price)
	}
	result.Products.Categories = len(result.Products.ByCategory)
	result.Products.AveragePrice = utils.Average(prices, 2)

	return result, nil
}
