package entity

import "time"

type StreamPlatform struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"size:30;not null"`
	Description string      `json:"description" gorm:"size:150;not null"`
	WatchList   []WatchList `json:"watchlist,omitempty" gorm:"foreignKey:PlatformID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `json:"-"`
	UpdatedAt   time.Time   `json:"-"`
}
