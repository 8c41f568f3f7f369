package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podwatch/watchlist-api/api/types"
	podcastsService "github.com/podwatch/watchlist-api/internal/services/podcasts"
)

// CreatePodcast adds a watchlist entry and establishes its PIN
// @Summary      Add a podcast
// @Description  Validate and store a new watchlist entry. The supplied 4-digit
// @Description  PIN is hashed and becomes the entry's mutation secret; it is
// @Description  never echoed back.
// @Tags         podcasts
// @Accept       json
// @Produce      json
// @Param        podcast body types.CreatePodcastRequest true "New podcast"
// @Success      201 {object} types.SinglePodcastResponse
// @Failure      400 {object} types.ErrorResponse "Validation failure"
// @Router       /api/v1/podcasts [post]
func CreatePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request types.CreatePodcastRequest
		if !types.BindJSONOrError(c, &request) {
			return
		}

		podcast, err := deps.PodcastService.Create(c.Request.Context(), podcastsService.CreateInput{
			Title:       request.Title,
			Host:        request.Host,
			URL:         request.URL,
			Category:    request.Category,
			Rating:      request.Rating,
			Description: request.Description,
			PIN:         request.PIN,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.SinglePodcastResponse{
			Status: types.StatusSuccess,
			Data:   types.PodcastData{Podcast: podcast},
		})
	}
}
