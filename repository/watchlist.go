package repository

import (
	"context"
	"errors"

	"github.com/tnqbao/gau-watchlist-service/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WatchListRepository reads return entries with their Reviews loaded.
type WatchListRepository interface {
	List(ctx context.Context) ([]entity.WatchList, error)
	GetByID(ctx context.Context, id uint) (*entity.WatchList, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, movie *entity.WatchList) error
	Update(ctx context.Context, movie *entity.WatchList) error
	Delete(ctx context.Context, id uint) error
}

type PostgresWatchListRepository struct {
	db *gorm.DB
}

func NewWatchListRepository(db *gorm.DB) *PostgresWatchListRepository {
	return &PostgresWatchListRepository{db: db}
}

func (r *PostgresWatchListRepository) List(ctx context.Context) ([]entity.WatchList, error) {
	movies := []entity.WatchList{}
	err := r.db.WithContext(ctx).
		Preload("Reviews", orderByID).
		Order("id ASC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *PostgresWatchListRepository) GetByID(ctx context.Context, id uint) (*entity.WatchList, error) {
	if !storable(id) {
		return nil, ErrNotFound
	}
	var movie entity.WatchList
	err := r.db.WithContext(ctx).
		Preload("Reviews", orderByID).
		First(&movie, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &movie, nil
}

func (r *PostgresWatchListRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if !storable(id) {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.WatchList{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresWatchListRepository) Create(ctx context.Context, movie *entity.WatchList) error {
	if movie == nil {
		return errors.New("watchlist entry cannot be nil")
	}
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(movie).Error)
}

// Update overwrites the mutable columns; reviews are never touched.
func (r *PostgresWatchListRepository) Update(ctx context.Context, movie *entity.WatchList) error {
	if movie == nil {
		return errors.New("watchlist entry cannot be nil")
	}
	res := r.db.WithContext(ctx).
		Model(&entity.WatchList{ID: movie.ID}).
		Select("name", "description", "active", "platform_id").
		Updates(movie)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresWatchListRepository) Delete(ctx context.Context, id uint) error {
	if !storable(id) {
		return ErrNotFound
	}
	res := r.db.WithContext(ctx).Delete(&entity.WatchList{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
