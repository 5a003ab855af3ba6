package container

import (
	"context"
	"fmt"
	"time"

	"demo-api/internal/config"
	infraCache "demo-api/internal/infrastructure/cache"
	"demo-api/internal/seed"
	"demo-api/internal/store"
	"demo-api/pkg/cache"
	"demo-api/pkg/logger"

	"demo-api/internal/domains/post"
	postHandler "demo-api/internal/domains/post/handler"
	postRepo "demo-api/internal/domains/post/repository"
	postService "demo-api/internal/domains/post/service"
	"demo-api/internal/domains/product"
	productHandler "demo-api/internal/domains/product/handler"
	productRepo "demo-api/internal/domains/product/repository"
	productService "demo-api/internal/domains/product/service"
	"demo-api/internal/domains/search"
	searchHandler "demo-api/internal/domains/search/handler"
	searchService "demo-api/internal/domains/search/service"
	"demo-api/internal/domains/stats"
	statsHandler "demo-api/internal/domains/stats/handler"
	statsService "demo-api/internal/domains/stats/service"
	"demo-api/internal/domains/user"
	userHandler "demo-api/internal/domains/user/handler"
	userRepo "demo-api/internal/domains/user/repository"
	userService "demo-api/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph.
// Every component is a singleton for the process lifetime.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config *config.Config
	Cache  cache.Cache
	// CacheDriver is the backend actually in use, which is memory after a
	// failed Redis connect whatever Config.Cache.Driver says.
	CacheDriver string

	// StoreOptions is shared by every collection (clock, id generator).
	StoreOptions store.Options

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	UserRepo    user.Repository
	PostRepo    post.Repository
	ProductRepo product.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	UserService    user.Service
	PostService    post.Service
	ProductService product.Service
	SearchService  search.Service
	StatsService   stats.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	UserHandler    *userHandler.UserHandler
	PostHandler    *postHandler.PostHandler
	ProductHandler *productHandler.ProductHandler
	SearchHandler  *searchHandler.SearchHandler
	StatsHandler   *statsHandler.StatsHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph from cfg.
//
// Initialization order matters:
// 1. Infrastructure (cache)
// 2. Repositories, then seed data
// 3. Services
// 4. Handlers
func NewContainer(cfg *config.Config) (*Container, error) {
	return build(cfg, store.Options{})
}

func build(cfg *config.Config, opts store.Options) (*Container, error) {
	c := &Container{
		Config:       cfg,
		StoreOptions: opts,
	}

	// ========================================
	// STEP 1: INITIALIZE CACHE
	// ========================================
	c.Cache = c.initCache()

	// ========================================
	// STEP 2: INITIALIZE REPOSITORIES
	// ========================================
	c.initRepositories()

	if err := c.seed(); err != nil {
		return nil, fmt.Errorf("failed to seed data: %w", err)
	}

	// ========================================
	// STEP 3: INITIALIZE SERVICES
	// ========================================
	c.initServices()

	// ========================================
	// STEP 4: INITIALIZE HANDLERS
	// ========================================
	c.initHandlers()

	logger.Info("Container initialized", map[string]interface{}{
		"environment":  cfg.App.Environment,
		"cache_driver": c.CacheDriver,
	})
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

// initCache connects Redis when configured. A Redis failure is not fatal:
// the process falls back to the in-memory cache.
func (c *Container) initCache() cache.Cache {
	c.CacheDriver = config.CacheMemory
	if c.Config.Cache.Driver != config.CacheRedis {
		return infraCache.NewMemoryCache()
	}

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("Redis connection failed, using in-memory cache", err)
		_ = redisCache.Close()
		return infraCache.NewMemoryCache()
	}

	c.CacheDriver = config.CacheRedis
	return redisCache
}

func (c *Container) initRepositories() {
	c.UserRepo = userRepo.NewMemoryRepository(c.StoreOptions)
	c.PostRepo = postRepo.NewMemoryRepository(c.StoreOptions)
	c.ProductRepo = productRepo.NewMemoryRepository(c.StoreOptions)
}

// seed loads SEED_FILE when set, the built-in records otherwise.
func (c *Container) seed() error {
	if c.Config.Seed.Disabled {
		logger.Info("Seeding disabled", nil)
		return nil
	}

	data := seed.Default()
	if c.Config.Seed.File != "" {
		loaded, err := seed.LoadFile(c.Config.Seed.File)
		if err != nil {
			return err
		}
		data = loaded
	}

	counts, err := seed.Apply(context.Background(), data, c.UserRepo, c.PostRepo, c.ProductRepo)
	if err != nil {
		return err
	}

	logger.Info("Seed data loaded", map[string]interface{}{
		"users":    counts.Users,
		"posts":    counts.Posts,
		"products": counts.Products,
		"file":     c.Config.Seed.File,
	})
	return nil
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo)
	c.PostService = postService.NewPostService(
		c.PostRepo,
		c.UserRepo, // author lookups
	)
	c.ProductService = productService.NewProductService(c.ProductRepo)
	c.SearchService = searchService.NewSearchService(c.UserRepo, c.PostRepo, c.ProductRepo)
	c.StatsService = statsService.NewStatsService(
		c.UserRepo,
		c.PostRepo,
		c.ProductRepo,
		c.Cache,
		c.Config.Cache.TTL,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.SearchHandler = searchHandler.NewSearchHandler(c.SearchService)
	c.StatsHandler = statsHandler.NewStatsHandler(c.StatsService)
}

// Cleanup releases resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Warn("Failed to close cache", err)
		}
	}
	logger.Info("Container cleanup completed", nil)
}
