package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podwatch/watchlist-api/api/types"
)

// DeletePodcast removes a watchlist entry after PIN authorization
// @Summary      Delete a podcast
// @Description  Permanently remove a watchlist entry. The entry's PIN (or the
// @Description  admin PIN) must be supplied in the request body.
// @Tags         podcasts
// @Accept       json
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Param        body body types.DeletePodcastRequest true "PIN authorization"
// @Success      204 "Deleted"
// @Failure      400 {object} types.ErrorResponse "Malformed PIN"
// @Failure      403 {object} types.ErrorResponse "Invalid PIN"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id} [delete]
func DeletePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var request types.DeletePodcastRequest
		if !types.BindJSONOrError(c, &request) {
			return
		}

		if err := deps.PodcastService.Delete(c.Request.Context(), id, request.PIN); err != nil {
			types.SendError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
