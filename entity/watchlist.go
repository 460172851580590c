package entity

import "time"

// WatchList is a movie or show entry, optionally carried by a StreamPlatform.
type WatchList struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null"`
	Description string    `json:"description" gorm:"size:200;not null"`
	Active      bool      `json:"active" gorm:"not null"`
	PlatformID  *uint     `json:"platform" gorm:"index"`
	Reviews     []Review  `json:"reviews,omitempty" gorm:"foreignKey:WatchListID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (WatchList) TableName() string {
	return "watchlist"
}
