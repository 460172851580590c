package repository

import (
	"errors"
	"math"

	"github.com/tnqbao/gau-watchlist-service/infra"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup by id matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write hits a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKeyViolated is returned when a write references a missing row.
	ErrForeignKeyViolated = errors.New("foreign key violated")
)

// MaxID is the largest id a bigint primary key can hold.
const MaxID = math.MaxInt64

type Repository struct {
	WatchListRepo      WatchListRepository
	StreamPlatformRepo StreamPlatformRepository
	ReviewRepo         ReviewRepository
}

func InitRepository(infra *infra.Infra) *Repository {
	if infra.Postgres == nil || infra.Postgres.DB == nil {
		panic("database connection is nil")
	}
	return NewRepository(infra.Postgres.DB)
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		WatchListRepo:      NewWatchListRepository(db),
		StreamPlatformRepo: NewStreamPlatformRepository(db),
		ReviewRepo:         NewReviewRepository(db),
	}
}

// translateError relies on gorm.Config.TranslateError for the constraint errors.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKeyViolated
	}
	return err
}

// storable reports whether id fits the bigint key; larger ids match nothing
// and the driver refuses to encode them.
func storable(id uint) bool {
	return uint64(id) <= MaxID
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
