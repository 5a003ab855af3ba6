package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"demo-api/internal/shared/middleware"
	"demo-api/internal/shared/response"
	"demo-api/pkg/container"
)

// SetupRouter mounts every route at the root and again under /api.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(),
	)

	health := healthCheckHandler(c, time.Now())

	registerRoutes(router, c, health)
	registerRoutes(router.Group("/api"), c, health)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	return router
}

func registerRoutes(r gin.IRouter, c *container.Container, health gin.HandlerFunc) {
	r.GET("/health", health)

	setupUserRoutes(r, c)
	setupPostRoutes(r, c)
	setupProductRoutes(r, c)

	r.GET("/search", c.SearchHandler.Search)
	r.GET("/stats", c.StatsHandler.Get)
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(r gin.IRouter, c *container.Container) {
	users := r.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.POST("", c.UserHandler.Create)
		users.GET("/:id", c.UserHandler.GetByID)
		users.PUT("/:id", c.UserHandler.Update)
		users.DELETE("/:id", c.UserHandler.Delete)
		users.GET("/:id/posts", c.PostHandler.ListByAuthor)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(r gin.IRouter, c *container.Container) {
	posts := r.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.POST("", c.PostHandler.Create)
		posts.GET("/:id", c.PostHandler.GetByID)
		posts.PUT("/:id", c.PostHandler.Update)
		posts.DELETE("/:id", c.PostHandler.Delete)
	}
}

// ========================================
// PRODUCT ROUTES
// ========================================
func setupProductRoutes(r gin.IRouter, c *container.Container) {
	products := r.Group("/products")
	{
		products.GET("", c.ProductHandler.List)
		products.POST("", c.ProductHandler.Create)
		products.GET("/:id", c.ProductHandler.GetByID)
		products.PUT("/:id", c.ProductHandler.Update)
		products.DELETE("/:id", c.ProductHandler.Delete)
	}
}

// healthCheckHandler always answers 200; a failing cache only marks the
// status as degraded.
func healthCheckHandler(appCtx *container.Container, startedAt time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":      "healthy",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(startedAt).Seconds(),
			"environment": appCtx.Config.App.Environment,
			"version":     appCtx.Config.App.Version,
		}

		message := "Service is healthy"
		cacheStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = "unavailable"
			health["status"] = "degraded"
			message = "Service is degraded"
		}
		health["services"] = gin.H{
			"cache": gin.H{
				"driver": appCtx.CacheDriver,
				"status": cacheStatus,
			},
		}

		response.Success(c, http.StatusOK, message, health)
	}
}
