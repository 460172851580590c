package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-watchlist-service/entity"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]entity.Review, error)
	GetByID(ctx context.Context, id uint) (*entity.Review, error)
	// ExistsByAuthor ignores the review with excludeID; pass 0 on create.
	ExistsByAuthor(ctx context.Context, authorID uuid.UUID, excludeID uint) (bool, error)
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uint) error
}

type PostgresReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (r *PostgresReviewRepository) List(ctx context.Context) ([]entity.Review, error) {
	reviews := []entity.Review{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *PostgresReviewRepository) GetByID(ctx context.Context, id uint) (*entity.Review, error) {
	if !storable(id) {
		return nil, ErrNotFound
	}
	var review entity.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &review, nil
}

func (r *PostgresReviewRepository) ExistsByAuthor(ctx context.Context, authorID uuid.UUID, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Review{}).Where("author_id = ?", authorID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return errors.New("review cannot be nil")
	}
	return translateError(r.db.WithContext(ctx).Create(review).Error)
}

func (r *PostgresReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return errors.New("review cannot be nil")
	}
	res := r.db.WithContext(ctx).
		Model(&entity.Review{ID: review.ID}).
		Select("rating", "description", "active", "watch_list_id", "author_id").
		Updates(review)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresReviewRepository) Delete(ctx context.Context, id uint) error {
	if !storable(id) {
		return ErrNotFound
	}
	res := r.db.WithContext(ctx).Delete(&entity.Review{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
