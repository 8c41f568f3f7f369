package types

import "github.com/podwatch/watchlist-api/internal/models"

// Status constants for API responses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// PodcastsResponse for podcast lists
type PodcastsResponse struct {
	Status  string       `json:"status"`
	Results int          `json:"results"`
	Data    PodcastsData `json:"data"`
}

// PodcastsData is the list payload envelope
type PodcastsData struct {
	Podcasts []models.Podcast `json:"podcasts"`
}

// SinglePodcastResponse for a single podcast
type SinglePodcastResponse struct {
	Status string      `json:"status"`
	Data   PodcastData `json:"data"`
}

// PodcastData is the single-item payload envelope
type PodcastData struct {
	Podcast *models.Podcast `json:"podcast"`
}

// StatsResponse for the per-category rating aggregation
type StatsResponse struct {
	Status string    `json:"status"`
	Data   StatsData `json:"data"`
}

// StatsData is the stats payload envelope
type StatsData struct {
	Stats []models.CategoryStat `json:"stats"`
}

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
