package podcasts

import (
	"context"

	"github.com/podwatch/watchlist-api/internal/models"
)

// ListOptions carries the generic filter/sort/field-selection conventions
// of the list endpoint. Search narrows by case-insensitive substring match
// over title, host and description.
type ListOptions struct {
	Search   string
	Category string
	Sort     string   // comma-separated fields, "-" prefix for descending
	Fields   []string // projection; empty means all fields
}

// CreateInput is a validated-on-entry request to add a podcast
type CreateInput struct {
	Title       string
	Host        string
	URL         string
	Category    string
	Rating      *float64
	Description string
	PIN         string
}

// UpdateInput is a partial patch; nil fields are left untouched
type UpdateInput struct {
	Title       *string
	Host        *string
	URL         *string
	Category    *string
	Rating      *float64
	Description *string
}

// IsEmpty reports whether the patch carries no fields
func (u UpdateInput) IsEmpty() bool {
	return u.Title == nil && u.Host == nil && u.URL == nil &&
		u.Category == nil && u.Rating == nil && u.Description == nil
}

// PodcastRepository defines the data access interface for podcasts
type PodcastRepository interface {
	CreatePodcast(ctx context.Context, podcast *models.Podcast) error
	GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error)
	UpdatePodcast(ctx context.Context, podcast *models.Podcast) error
	DeletePodcast(ctx context.Context, id uint) error
	ListPodcasts(ctx context.Context, opts ListOptions) ([]models.Podcast, error)
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
	TopRated(ctx context.Context, limit int) ([]models.Podcast, error)
}

// PodcastService defines the business logic interface for watchlist operations
type PodcastService interface {
	List(ctx context.Context, opts ListOptions) ([]models.Podcast, error)
	Get(ctx context.Context, id uint) (*models.Podcast, error)
	Create(ctx context.Context, input CreateInput) (*models.Podcast, error)
	Update(ctx context.Context, id uint, patch UpdateInput, pin string) (*models.Podcast, error)
	Delete(ctx context.Context, id uint, pin string) error
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
	TopRated(ctx context.Context) ([]models.Podcast, error)
}
