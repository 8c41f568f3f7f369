package types

// CreatePodcastRequest is the POST body for adding a watchlist entry.
// The PIN travels only in requests; responses never echo it.
type CreatePodcastRequest struct {
	Title       string   `json:"title"`
	Host        string   `json:"host"`
	URL         string   `json:"url"`
	Category    string   `json:"category"`
	Rating      *float64 `json:"rating"`
	Description string   `json:"description"`
	PIN         string   `json:"pin"`
}

// UpdatePodcastRequest is the PATCH body; nil fields are not modified
type UpdatePodcastRequest struct {
	Title       *string  `json:"title"`
	Host        *string  `json:"host"`
	URL         *string  `json:"url"`
	Category    *string  `json:"category"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
	PIN         string   `json:"pin"`
}

// DeletePodcastRequest is the DELETE body
type DeletePodcastRequest struct {
	PIN string `json:"pin"`
}
