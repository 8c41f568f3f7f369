package podcasts

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/podwatch/watchlist-api/internal/models"
	"github.com/podwatch/watchlist-api/pkg/errors"
	"gorm.io/gorm"
)

// sortableColumns maps the JSON field names accepted in sort/fields query
// params to their column names. Anything outside this map is ignored.
var sortableColumns = map[string]string{
	"title":       "title",
	"host":        "host",
	"url":         "url",
	"category":    "category",
	"rating":      "rating",
	"description": "description",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PodcastRepository {
	return &Repository{db: db}
}

// CreatePodcast creates a new podcast
func (r *Repository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Create(podcast).Error; err != nil {
		return errors.DatabaseError("create", err)
	}
	return nil
}

// GetPodcastByID retrieves a podcast by its identifier
func (r *Repository) GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).First(&podcast, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("podcast")
		}
		return nil, errors.DatabaseError("get", err)
	}
	return &podcast, nil
}

// UpdatePodcast persists a modified podcast, stamping UpdatedAt
func (r *Repository) UpdatePodcast(ctx context.Context, podcast *models.Podcast) error {
	now := time.Now().UTC()
	podcast.UpdatedAt = &now

	result := r.db.WithContext(ctx).Save(podcast)
	if result.Error != nil {
		return errors.DatabaseError("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("podcast")
	}
	return nil
}

// DeletePodcast removes a podcast permanently
func (r *Repository) DeletePodcast(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Podcast{}, id)
	if result.Error != nil {
		return errors.DatabaseError("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("podcast")
	}
	return nil
}

// ListPodcasts returns podcasts honoring search, category filter, sort
// order and field projection
func (r *Repository) ListPodcasts(ctx context.Context, opts ListOptions) ([]models.Podcast, error) {
	query := r.db.WithContext(ctx).Model(&models.Podcast{})

	if opts.Search != "" {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(host) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}

	query = query.Order(buildOrderClause(opts.Sort))

	if cols := projectColumns(opts.Fields); cols != nil {
		query = query.Select(cols)
	}

	var podcasts []models.Podcast
	if err := query.Find(&podcasts).Error; err != nil {
		return nil, errors.DatabaseError("list", err)
	}
	return podcasts, nil
}

// CategoryStats aggregates podcast counts and rating bounds per category,
// best-rated categories first
func (r *Repository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	var stats []models.CategoryStat
	err := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Select("category, COUNT(*) AS num_podcasts, AVG(rating) AS avg_rating, MIN(rating) AS min_rating, MAX(rating) AS max_rating").
		Group("category").
		Order("avg_rating DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, errors.DatabaseError("stats", err)
	}
	return stats, nil
}

// TopRated returns the highest rated podcasts
func (r *Repository) TopRated(ctx context.Context, limit int) ([]models.Podcast, error) {
	var podcasts []models.Podcast
	err := r.db.WithContext(ctx).
		Where("rating IS NOT NULL").
		Order("rating DESC").
		Limit(limit).
		Find(&podcasts).Error
	if err != nil {
		return nil, errors.DatabaseError("top rated", err)
	}
	return podcasts, nil
}

// buildOrderClause turns "-rating,title" into "rating DESC, title ASC".
// Unknown fields are dropped; an empty result falls back to insertion order.
func buildOrderClause(sort string) string {
	var clauses []string
	for _, field := range strings.Split(sort, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		direction := "ASC"
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			field = field[1:]
		}

		if column, ok := sortableColumns[field]; ok {
			clauses = append(clauses, column+" "+direction)
		}
	}

	if len(clauses) == 0 {
		return "created_at DESC"
	}
	return strings.Join(clauses, ", ")
}

// projectColumns maps requested field names to columns. The id and the
// pin hash column are always and never included respectively. Unselected
// struct fields keep their zero values, so the JSON shape stays constant
// across projections; `fields` narrows what is read, not what is emitted.
func projectColumns(fields []string) []string {
	if len(fields) == 0 {
		return nil
	}

	cols := []string{"id"}
	for _, field := range fields {
		if column, ok := sortableColumns[strings.TrimSpace(field)]; ok {
			cols = append(cols, column)
		}
	}

	if len(cols) == 1 {
		return nil
	}
	return cols
}
