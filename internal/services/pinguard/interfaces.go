package pinguard

import (
	"context"

	"github.com/podwatch/watchlist-api/internal/models"
)

// PodcastLookup resolves a podcast identifier to its stored record.
// Satisfied by the podcasts repository.
type PodcastLookup interface {
	GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error)
}

// PinGuard decides whether a mutating request on a podcast may proceed
type PinGuard interface {
	// Authorize checks a candidate PIN against the podcast's stored hash.
	// Checks run in a fixed order: PIN format first, then resource
	// existence, then the match itself. On success it returns the podcast
	// so callers avoid a second lookup.
	Authorize(ctx context.Context, podcastID uint, candidatePIN string) (*models.Podcast, error)

	// EstablishHash validates a new PIN's format and returns its one-way
	// hash for storage. The plaintext is never retained.
	EstablishHash(pin string) (string, error)
}
