package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/podwatch/watchlist-api/api/types"
)

// RegisterRoutes registers podcast routes.
// Rate limiting is applied at the route registration level: reads share
// one budget, PIN-gated mutations a tighter one.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, readMiddleware, mutateMiddleware gin.HandlerFunc) {
	router.GET("", readMiddleware, GetAllPodcasts(deps))
	router.GET("/top-rated", readMiddleware, GetTopRated(deps))
	router.GET("/stats", readMiddleware, GetStats(deps))
	router.GET("/:id", readMiddleware, GetPodcast(deps))

	router.POST("", mutateMiddleware, CreatePodcast(deps))
	router.PATCH("/:id", mutateMiddleware, UpdatePodcast(deps))
	router.DELETE("/:id", mutateMiddleware, DeletePodcast(deps))
}
