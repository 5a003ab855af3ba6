package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demo-api/internal/domains/post"
	postrepo "demo-api/internal/domains/post/repository"
	"demo-api/internal/domains/product"
	productrepo "demo-api/internal/domains/product/repository"
	"demo-api/internal/domains/user"
	userrepo "demo-api/internal/domains/user/repository"
	infracache "demo-api/internal/infrastructure/cache"
	"demo-api/internal/store"
	"demo-api/pkg/cache"
)

type fixture struct {
	users    user.Repository
	posts    post.Repository
	products product.Repository
	now      *time.Time
}

func newFixture() *fixture {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	opts := store.Options{Now: func() time.Time { return now }}
	return &fixture{
		users:    userrepo.NewMemoryRepository(opts),
		posts:    postrepo.NewMemoryRepository(opts),
		products: productrepo.NewMemoryRepository(opts),
		now:      &now,
	}
}

func (f *fixture) service(c cache.Cache) *statsService {
	svc := NewStatsService(f.users, f.posts, f.products, c, time.Minute).(*statsService)
	svc.now = func() time.Time { return *f.now }
	return svc
}

// seed creates one old and one fresh record of each kind.
func (f *fixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	fresh := *f.now

	*f.now = fresh.Add(-30 * 24 * time.Hour)
	old, err := f.users.Create(ctx, user.User{Name: "Old", Email: "old@example.com"})
	require.NoError(t, err)
	_, err = f.posts.Create(ctx, post.Post{Title: "Old", Content: "x", AuthorID: old.ID, Published: true})
	require.NoError(t, err)
	_, err = f.products.Create(ctx, product.Product{Name: "Laptop", Description: "x", Price: 1299.99, Category: "Electronics", InStock: true})
	require.NoError(t, err)

	*f.now = fresh.Add(-time.Hour)
	_, err = f.users.Create(ctx, user.User{Name: "New", Email: "new@example.com"})
	require.NoError(t, err)
	_, err = f.posts.Create(ctx, post.Post{Title: "New", Content: "x", AuthorID: old.ID})
	require.NoError(t, err)
	_, err = f.products.Create(ctx, product.Product{Name: "Mug", Description: "x", Price: 19.99, Category: "Home", InStock: false})
	require.NoError(t, err)
	_, err = f.products.Create(ctx, product.Product{Name: "Phone", Description: "x", Price: 500, Category: "Electronics", InStock: true})
	require.NoError(t, err)

	*f.now = fresh
}

func TestStatsService_Compute(t *testing.T) {
	f := newFixture()
	f.seed(t)

	got, err := f.service(nil).Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, got.Users.Total)
	assert.Equal(t, 1, got.Users.Recent)

	assert.Equal(t, 2, got.Posts.Total)
	assert.Equal(t, 1, got.Posts.Published)
	assert.Equal(t, 1, got.Posts.Draft)
	assert.Equal(t, 1, got.Posts.Recent)

	assert.Equal(t, 3, got.Products.Total)
	assert.Equal(t, 2, got.Products.InStock)
	assert.Equal(t, 1, got.Products.OutOfStock)
	assert.Equal(t, 2, got.Products.Categories)
	assert.Equal(t, map[string]int{"Electronics": 2, "Home": 1}, got.Products.ByCategory)
	assert.Equal(t, 606.66, got.Products.AveragePrice)

	assert.Equal(t, 7, got.Overview.TotalEntities)
	assert.True(t, got.Overview.LastUpdated.Equal(*f.now))
}

func TestStatsService_Empty(t *testing.T) {
	got, err := newFixture().service(nil).Get(context.Background())

	require.NoError(t, err)
	assert.Zero(t, got.Products.AveragePrice)
	assert.Zero(t, got.Overview.TotalEntities)
	assert.NotNil(t, got.Products.ByCategory)
}

func TestStatsService_CachesUntilWrite(t *testing.T) {
	f := newFixture()
	f.seed(t)
	svc := f.service(infracache.NewMemoryCache())
	ctx := context.Background()

	first, err := svc.Get(ctx)
	require.NoError(t, err)

	*f.now = f.now.Add(time.Second)
	second, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, second.Overview.LastUpdated.Equal(first.Overview.LastUpdated), "expected cached result")

	_, err = f.users.Create(ctx, user.User{Name: "Another", Email: "another@example.com"})
	require.NoError(t, err)

	third, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, third.Users.Total)
	assert.True(t, third.Overview.LastUpdated.After(first.Overview.LastUpdated))
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string, interface{}) (bool, error) {
	return false, errors.New("connection refused")
}
func (brokenCache) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("connection refused")
}
func (brokenCache) Delete(context.Context, ...string) error { return nil }
func (brokenCache) Ping(context.Context) error              { return errors.New("connection refused") }
func (brokenCache) Close() error                            { return nil }

func TestStatsService_CacheFailureDegrades(t *testing.T) {
	f := newFixture()
	f.seed(t)

	got, err := f.service(brokenCache{}).Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, got.Users.Total)
}

func TestStatsService_SharedCacheIsolatesInstances(t *testing.T) {
	ctx := context.Background()
	shared := infracache.NewMemoryCache()

	a := newFixture()
	_, err := a.products.Create(ctx, product.Product{Name: "Pen", Description: "x", Price: 10, Category: "Office", InStock: true})
	require.NoError(t, err)

	b := newFixture()
	_, err = b.products.Create(ctx, product.Product{Name: "Desk", Description: "x", Price: 999, Category: "Office", InStock: false})
	require.NoError(t, err)

	// same collection versions on both sides
	require.Equal(t, a.products.Version(), b.products.Version())

	fromA, err := a.service(shared).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, fromA.Products.AveragePrice)

	fromB, err := b.service(shared).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 999.0, fromB.Products.AveragePrice)
	assert.Equal(t, 1, fromB.Products.OutOfStock)
}
