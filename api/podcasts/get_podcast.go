package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podwatch/watchlist-api/api/types"
)

// GetPodcast returns a single watchlist entry
// @Summary      Get podcast details
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.SinglePodcastResponse
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID format"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		podcast, err := deps.PodcastService.Get(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.SinglePodcastResponse{
			Status: types.StatusSuccess,
			Data:   types.PodcastData{Podcast: podcast},
		})
	}
}
