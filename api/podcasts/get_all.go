package podcasts

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/podwatch/watchlist-api/api/types"
	podcastsService "github.com/podwatch/watchlist-api/internal/services/podcasts"
)

// GetAllPodcasts returns the watchlist, optionally narrowed and shaped
// @Summary      List podcasts
// @Description  List all watchlist entries. Supports case-insensitive substring
// @Description  search over title/host/description, category filtering, sorting
// @Description  ("-rating,title") and field selection ("title,category").
// @Tags         podcasts
// @Produce      json
// @Param        search query string false "Substring to search for"
// @Param        category query string false "Exact category filter"
// @Param        sort query string false "Sort fields, '-' prefix for descending"
// @Param        fields query string false "Comma-separated field projection"
// @Success      200 {object} types.PodcastsResponse
// @Router       /api/v1/podcasts [get]
func GetAllPodcasts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := podcastsService.ListOptions{
			Search:   c.Query("search"),
			Category: c.Query("category"),
			Sort:     c.Query("sort"),
		}
		if fields := c.Query("fields"); fields != "" {
			opts.Fields = strings.Split(fields, ",")
		}

		list, err := deps.PodcastService.List(c.Request.Context(), opts)
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
