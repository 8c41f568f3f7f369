package types

import (
	"github.com/podwatch/watchlist-api/internal/database"
	"github.com/podwatch/watchlist-api/internal/services/podcasts"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	PodcastService podcasts.PodcastService
}
