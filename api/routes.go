package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/podwatch/watchlist-api/api/health"
	"github.com/podwatch/watchlist-api/api/podcasts"
	"github.com/podwatch/watchlist-api/api/types"
	"github.com/podwatch/watchlist-api/api/version"
	_ "github.com/podwatch/watchlist-api/docs/swagger"
	"github.com/podwatch/watchlist-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public operational routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")

	if deps == nil {
		deps = &types.Dependencies{}
	}

	podcastGroup := v1.Group("/podcasts")
	if config.GetBool("rate_limiting.enabled") {
		// Reads get a generous budget (10 req/s, burst of 20); mutations a
		// tighter one since each carries a bcrypt comparison (2 req/s, burst of 5)
		readMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)
		mutateMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 5)
		podcasts.RegisterRoutes(podcastGroup, deps, readMiddleware, mutateMiddleware)
	} else {
		noop := func(c *gin.Context) { c.Next() }
		podcasts.RegisterRoutes(podcastGroup, deps, noop, noop)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Can't find " + c.Request.URL.Path + " on this server!",
		})
	}
}
