package pinguard

import (
	"context"

	"github.com/podwatch/watchlist-api/internal/models"
	"github.com/podwatch/watchlist-api/internal/validation"
	"github.com/podwatch/watchlist-api/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor for stored PINs. High enough to make
// offline guessing of a leaked store expensive.
const hashCost = 12

type Guard struct {
	lookup   PodcastLookup
	adminPIN string
}

// NewGuard creates a PIN authorization gate. adminPIN is the out-of-band
// secret that authorizes mutation of any podcast; pass "" to disable the
// override.
func NewGuard(lookup PodcastLookup, adminPIN string) PinGuard {
	return &Guard{lookup: lookup, adminPIN: adminPIN}
}

// Authorize implements the ordered gate: format validation, then resource
// existence, then match. No hash comparison runs for a malformed PIN, and
// a mismatch yields the same generic message regardless of how close the
// candidate was.
func (g *Guard) Authorize(ctx context.Context, podcastID uint, candidatePIN string) (*models.Podcast, error) {
	if err := validation.PIN(candidatePIN); err != nil {
		return nil, err
	}

	podcast, err := g.lookup.GetPodcastByID(ctx, podcastID)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseQuery, "looking up podcast")
	}

	if g.adminPIN != "" && candidatePIN == g.adminPIN {
		return podcast, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(podcast.PINHash), []byte(candidatePIN)) != nil {
		return nil, errors.Authorization("Invalid PIN for this podcast")
	}

	return podcast, nil
}

// EstablishHash hashes a new PIN at the configured work factor after
// validating its format. The caller discards the plaintext.
func (g *Guard) EstablishHash(pin string) (string, error) {
	if err := validation.PIN(pin); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), hashCost)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "hashing PIN")
	}

	return string(hash), nil
}
