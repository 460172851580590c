package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review belongs to exactly one WatchList entry. AuthorID is unique: an author
// writes at most one review.
type Review struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Rating      int       `json:"rating" gorm:"not null"`
	Description string    `json:"description" gorm:"size:200"`
	Active      bool      `json:"active" gorm:"not null"`
	WatchListID uint      `json:"watchlist" gorm:"not null;index"`
	AuthorID    uuid.UUID `json:"author" gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
