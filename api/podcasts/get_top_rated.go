package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podwatch/watchlist-api/api/types"
)

// GetTopRated returns the five highest rated podcasts
// @Summary      Top rated podcasts
// @Tags         podcasts
// @Produce      json
// @Success      200 {object} types.PodcastsResponse
// @Router       /api/v1/podcasts/top-rated [get]
func GetTopRated(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.PodcastService.TopRated(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.PodcastsResponse{
			Status:  types.StatusSuccess,
			Results: len(list),
			Data:    types.PodcastsData{Podcasts: list},
		})
	}
}
