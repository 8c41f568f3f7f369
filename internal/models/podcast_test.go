package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPodcastJSONNeverExposesPIN(t *testing.T) {
	rating := 4.5
	now := time.Now()

	podcasts := []Podcast{
		{
			ID:       1,
			Title:    "Science Friday",
			Host:     "Ira Flatow",
			URL:      "https://open.spotify.com/show/x",
			Category: "Science",
			PINHash:  "$2a$12$abcdefghijklmnopqrstuvwxyz012345678901234567890123456",
		},
		{
			ID:          2,
			Title:       "The Daily",
			Host:        "Michael Barbaro",
			URL:         "https://podcasts.apple.com/us/podcast/the-daily",
			Category:    "News & Politics",
			Rating:      &rating,
			Description: "News podcast",
			PINHash:     "$2a$12$zyxwvutsrqponmlkjihgfedcba987654321098765432109876543",
			UpdatedAt:   &now,
		},
	}

	for _, p := range podcasts {
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.NotContains(t, decoded, "pin")
		assert.NotContains(t, decoded, "pin_hash")
		assert.NotContains(t, decoded, "PINHash")
		assert.NotContains(t, string(data), p.PINHash)
	}
}

func TestPodcastJSONOmitsUpdatedAtUntilModified(t *testing.T) {
	p := Podcast{
		ID:        1,
		Title:     "Radiolab",
		Host:      "Lulu Miller",
		URL:       "https://open.spotify.com/show/radiolab",
		Category:  "Science",
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.NotContains(t, decoded, "updatedAt")
	assert.Contains(t, decoded, "createdAt")

	now := time.Now()
	p.UpdatedAt = &now
	data, err = json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "updatedAt")
}

func TestPodcastJSONOmitsEmptyOptionalFields(t *testing.T) {
	p := Podcast{ID: 3, Title: "Hidden Brain", Host: "Shankar Vedantam"}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.NotContains(t, decoded, "rating")
	assert.NotContains(t, decoded, "description")
}
