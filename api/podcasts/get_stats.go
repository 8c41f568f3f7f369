package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podwatch/watchlist-api/api/types"
)

// GetStats returns per-category rating statistics
// @Summary      Category statistics
// @Description  Count and rating aggregates per category, best-rated first.
// @Tags         podcasts
// @Produce      json
// @Success      200 {object} types.StatsResponse
// @Router       /api/v1/podcasts/stats [get]
func GetStats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := deps.PodcastService.CategoryStats(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.StatsResponse{
			Status: types.StatusSuccess,
			Data:   types.StatsData{Stats: stats},
		})
	}
}
