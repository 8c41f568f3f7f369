package models

import (
	"time"
)

// Podcast represents a watchlist entry.
//
// The PIN is stored only as a bcrypt hash and is excluded from every JSON
// representation. UpdatedAt is managed by the repository so that it stays
// unset until the entry is modified for the first time.
type Podcast struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null;size:100"`
	Host        string     `json:"host" gorm:"not null;size:50"`
	URL         string     `json:"url" gorm:"not null"`
	Category    string     `json:"category" gorm:"not null;index"`
	Rating      *float64   `json:"rating,omitempty" gorm:"index"`
	Description string     `json:"description,omitempty" gorm:"size:500"`
	PINHash     string     `json:"-" gorm:"column:pin_hash;not null"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" gorm:"autoUpdateTime:false"`
}

// CategoryStat is one row of the per-category rating aggregation
type CategoryStat struct {
	Category    string   `json:"category"`
	NumPodcasts int      `json:"numPodcasts"`
	AvgRating   *float64 `json:"avgRating"`
	MinRating   *float64 `json:"minRating"`
	MaxRating   *float64 `json:"maxRating"`
}
