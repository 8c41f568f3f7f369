package watchlist

import "time"

// Podcast is the wire representation of a watchlist entry. The server
// never emits the PIN or its hash, so the SDK has no field for them.
type Podcast struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Host        string     `json:"host"`
	URL         string     `json:"url"`
	Category    string     `json:"category"`
	Rating      *float64   `json:"rating,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// CategoryStat is one row of the per-category rating aggregation
type CategoryStat struct {
	Category    string   `json:"category"`
	NumPodcasts int      `json:"numPodcasts"`
	AvgRating   *float64 `json:"avgRating"`
	MinRating   *float64 `json:"minRating"`
	MaxRating   *float64 `json:"maxRating"`
}

// CreateRequest is the payload for adding a watchlist entry
type CreateRequest struct {
	Title       string   `json:"title"`
	Host        string   `json:"host"`
	URL         string   `json:"url"`
	Category    string   `json:"category"`
	Rating      *float64 `json:"rating,omitempty"`
	Description string   `json:"description,omitempty"`
	PIN         string   `json:"pin"`
}

// UpdateRequest is a partial patch; nil fields are left untouched
type UpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Host        *string  `json:"host,omitempty"`
	URL         *string  `json:"url,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Description *string  `json:"description,omitempty"`
	PIN         string   `json:"pin"`
}

// ListQuery carries the list endpoint's query conventions
type ListQuery struct {
	Search   string
	Category string
	Sort     string
	Fields   []string
}

// Wire envelopes, mirroring the server's response shapes.
type listEnvelope struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Data    struct {
		Podcasts []Podcast `json:"podcasts"`
	} `json:"data"`
}

type singleEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		Podcast *Podcast `json:"podcast"`
	} `json:"data"`
}

type statsEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		Stats []CategoryStat `json:"stats"`
	} `json:"data"`
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
