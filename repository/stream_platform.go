package repository

import (
	"context"
	"errors"

	"github.com/tnqbao/gau-watchlist-service/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StreamPlatformRepository reads return platforms with their WatchList
// entries loaded. withReviews also loads each entry's Reviews; without it the
// entries only carry their keys.
type StreamPlatformRepository interface {
	List(ctx context.Context, withReviews bool) ([]entity.StreamPlatform, error)
	GetByID(ctx context.Context, id uint, withReviews bool) (*entity.StreamPlatform, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, platform *entity.StreamPlatform) error
	Update(ctx context.Context, platform *entity.StreamPlatform) error
	Delete(ctx context.Context, id uint) error
}

type PostgresStreamPlatformRepository struct {
	db *gorm.DB
}

func NewStreamPlatformRepository(db *gorm.DB) *PostgresStreamPlatformRepository {
	return &PostgresStreamPlatformRepository{db: db}
}

func (r *PostgresStreamPlatformRepository) withWatchList(ctx context.Context, withReviews bool) *gorm.DB {
	if !withReviews {
		return r.db.WithContext(ctx).Preload("WatchList", func(db *gorm.DB) *gorm.DB {
			return orderByID(db.Select("id", "platform_id"))
		})
	}
	return r.db.WithContext(ctx).
		Preload("WatchList", orderByID).
		Preload("WatchList.Reviews", orderByID)
}

func (r *PostgresStreamPlatformRepository) List(ctx context.Context, withReviews bool) ([]entity.StreamPlatform, error) {
	platforms := []entity.StreamPlatform{}
	err := r.withWatchList(ctx, withReviews).Order("id ASC").Find(&platforms).Error
	if err != nil {
		return nil, err
	}
	return platforms, nil
}

func (r *PostgresStreamPlatformRepository) GetByID(ctx context.Context, id uint, withReviews bool) (*entity.StreamPlatform, error) {
	if !storable(id) {
		return nil, ErrNotFound
	}
	var platform entity.StreamPlatform
	if err := r.withWatchList(ctx, withReviews).First(&platform, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &platform, nil
}

func (r *PostgresStreamPlatformRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if !storable(id) {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.StreamPlatform{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresStreamPlatformRepository) Create(ctx context.Context, platform *entity.StreamPlatform) error {
	if platform == nil {
		return errors.New("stream platform cannot be nil")
	}
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(platform).Error)
}

func (r *PostgresStreamPlatformRepository) Update(ctx context.Context, platform *entity.StreamPlatform) error {
	if platform == nil {
		return errors.New("stream platform cannot be nil")
	}
	res := r.db.WithContext(ctx).
		Model(&entity.StreamPlatform{ID: platform.ID}).
		Select("name", "description").
		Updates(platform)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the platform; the foreign key cascades to its entries.
func (r *PostgresStreamPlatformRepository) Delete(ctx context.Context, id uint) error {
	if !storable(id) {
		return ErrNotFound
	}
	res := r.db.WithContext(ctx).Delete(&entity.StreamPlatform{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
