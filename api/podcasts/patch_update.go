package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podwatch/watchlist-api/api/types"
	podcastsService "github.com/podwatch/watchlist-api/internal/services/podcasts"
)

// UpdatePodcast applies a PIN-gated partial update
// @Summary      Update a podcast
// @Description  Apply a partial update to a watchlist entry. The entry's PIN
// @Description  (or the admin PIN) must accompany the patch; a patch carrying
// @Description  no fields besides the PIN is rejected.
// @Tags         podcasts
// @Accept       json
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Param        patch body types.UpdatePodcastRequest true "Fields to update plus pin"
// @Success      200 {object} types.SinglePodcastResponse
// @Failure      400 {object} types.ErrorResponse "Validation failure or empty patch"
// @Failure      403 {object} types.ErrorResponse "Invalid PIN"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id} [patch]
func UpdatePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var request types.UpdatePodcastRequest
		if !types.BindJSONOrError(c, &request) {
			return
		}

		patch := podcastsService.UpdateInput{
			Title:       request.Title,
			Host:        request.Host,
			URL:         request.URL,
			Category:    request.Category,
			Rating:      request.Rating,
			Description: request.Description,
		}

		podcast, err := deps.PodcastService.Update(c.Request.Context(), id, patch, request.PIN)
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
