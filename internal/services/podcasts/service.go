package podcasts

import (
	"context"
	"log"
	"strings"

	"github.com/podwatch/watchlist-api/internal/models"
	"github.com/podwatch/watchlist-api/internal/services/pinguard"
	"github.com/podwatch/watchlist-api/internal/validation"
	"github.com/podwatch/watchlist-api/pkg/errors"
)

const topRatedLimit = 5

type Service struct {
	repository PodcastRepository
	guard      pinguard.PinGuard
}

func NewService(repository PodcastRepository, guard pinguard.PinGuard) PodcastService {
	return &Service{
		repository: repository,
		guard:      guard,
	}
}

// List returns podcasts honoring the list options
func (s *Service) List(ctx context.Context, opts ListOptions) ([]models.Podcast, error) {
	return s.repository.ListPodcasts(ctx, opts)
}

// Get returns a single podcast by identifier
func (s *Service) Get(ctx context.Context, id uint) (*models.Podcast, error) {
	return s.repository.GetPodcastByID(ctx, id)
}

// Create validates the input, establishes the PIN hash and stores the new
// podcast. The plaintext PIN is discarded once hashed.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Podcast, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	hash, err := s.guard.EstablishHash(input.PIN)
	if err != nil {
		return nil, err
	}

	podcast := &models.Podcast{
		Title:       strings.TrimSpace(input.Title),
		Host:        strings.TrimSpace(input.Host),
		URL:         input.URL,
		Category:    input.Category,
		Description: strings.TrimSpace(input.Description),
		PINHash:     hash,
	}
	if input.Rating != nil {
		rounded := validation.RoundRating(*input.Rating)
		podcast.Rating = &rounded
	}

	if err := s.repository.CreatePodcast(ctx, podcast); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Created podcast %d: %s", podcast.ID, podcast.Title)
	return podcast, nil
}

// Update authorizes the mutation through the PIN gate, then applies and
// re-validates the patched fields. A patch with no fields besides the PIN
// is rejected.
func (s *Service) Update(ctx context.Context, id uint, patch UpdateInput, pin string) (*models.Podcast, error) {
	podcast, err := s.guard.Authorize(ctx, id, pin)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return nil, errors.Validation("no fields to update")
	}

	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		podcast.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Host != nil {
		podcast.Host = strings.TrimSpace(*patch.Host)
	}
	if patch.URL != nil {
		podcast.URL = *patch.URL
	}
	if patch.Category != nil {
		podcast.Category = *patch.Category
	}
	if patch.Rating != nil {
		rounded := validation.RoundRating(*patch.Rating)
		podcast.Rating = &rounded
	}
	if patch.Description != nil {
		podcast.Description = strings.TrimSpace(*patch.Description)
	}

	if err := s.repository.UpdatePodcast(ctx, podcast); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Updated podcast %d: %s", podcast.ID, podcast.Title)
	return podcast, nil
}

// Delete authorizes the mutation through the PIN gate and removes the
// podcast permanently
func (s *Service) Delete(ctx context.Context, id uint, pin string) error {
	podcast, err := s.guard.Authorize(ctx, id, pin)
	if err != nil {
		return err
	}

	if err := s.repository.DeletePodcast(ctx, podcast.ID); err != nil {
		return err
	}

	log.Printf("[INFO] Deleted podcast %d: %s", podcast.ID, podcast.Title)
	return nil
}

// CategoryStats aggregates rating statistics per category
func (s *Service) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	return s.repository.CategoryStats(ctx)
}

// TopRated returns the five highest rated podcasts
func (s *Service) TopRated(ctx context.Context) ([]models.Podcast, error) {
	return s.repository.TopRated(ctx, topRatedLimit)
}

func validateCreate(input CreateInput) error {
	if err := validation.Title(input.Title); err != nil {
		return err
	}
	if err := validation.Host(input.Host); err != nil {
		return err
	}
	if err := validation.URL(input.URL); err != nil {
		return err
	}
	if err := validation.Category(input.Category); err != nil {
		return err
	}
	if err := validation.Description(input.Description); err != nil {
		return err
	}
	if input.Rating != nil {
		if err := validation.Rating(*input.Rating); err != nil {
			return err
		}
	}
	return nil
}

func validatePatch(patch UpdateInput) error {
	if patch.Title != nil {
		if err := validation.Title(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Host != nil {
		if err := validation.Host(*patch.Host); err != nil {
			return err
		}
	}
	if patch.URL != nil {
		if err := validation.URL(*patch.URL); err != nil {
			return err
		}
	}
	if patch.Category != nil {
		if err := validation.Category(*patch.Category); err != nil {
			return err
		}
	}
	if patch.Rating != nil {
		if err := validation.Rating(*patch.Rating); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if err := validation.Description(*patch.Description); err != nil {
			return err
		}
	}
	return nil
}
