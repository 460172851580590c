// Package repositorytest provides an in-memory implementation of the
// repository interfaces for handler tests.
package repositorytest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-watchlist-service/entity"
	"github.com/tnqbao/gau-watchlist-service/repository"
)

// Store keeps every table in memory and mimics the Postgres behaviour the
// handlers rely on: generated ids, ordering by id, preloaded relations,
// cascading deletes, constraint errors and the bigint key range.
type Store struct {
	mu        sync.Mutex
	err       error
	nextID    map[string]uint
	movies    map[uint]entity.WatchList
	platforms map[uint]entity.StreamPlatform
	reviews   map[uint]entity.Review
}

func NewStore() *Store {
	return &Store{
		nextID:    map[string]uint{},
		movies:    map[uint]entity.WatchList{},
		platforms: map[uint]entity.StreamPlatform{},
		reviews:   map[uint]entity.Review{},
	}
}

// Fail makes every subsequent call return err. Pass nil to recover.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		WatchListRepo:      &watchLists{s},
		StreamPlatformRepo: &platforms{s},
		ReviewRepo:         &reviews{s},
	}
}

// checkID fails like the Postgres driver does for ids beyond bigint.
func checkID(id uint) error {
	if uint64(id) > repository.MaxID {
		return fmt.Errorf("unable to encode %d into int8: greater than maximum value for int64", id)
	}
	return nil
}

func (s *Store) id(table string) uint {
	s.nextID[table]++
	return s.nextID[table]
}

func sortedKeys[T any](m map[uint]T) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (s *Store) reviewsOf(movieID uint) []entity.Review {
	out := []entity.Review{}
	for _, id := range sortedKeys(s.reviews) {
		if s.reviews[id].WatchListID == movieID {
			out = append(out, s.reviews[id])
		}
	}
	return out
}

func (s *Store) loadMovie(id uint) entity.WatchList {
	movie := s.movies[id]
	movie.Reviews = s.reviewsOf(id)
	return movie
}

func (s *Store) loadPlatform(id uint, withReviews bool) entity.StreamPlatform {
	platform := s.platforms[id]
	platform.WatchList = []entity.WatchList{}
	for _, movieID := range sortedKeys(s.movies) {
		p := s.movies[movieID].PlatformID
		if p == nil || *p != id {
			continue
		}
		if withReviews {
			platform.WatchList = append(platform.WatchList, s.loadMovie(movieID))
		} else {
			platform.WatchList = append(platform.WatchList, s.movies[movieID])
		}
	}
	return platform
}

func (s *Store) checkMovie(movie *entity.WatchList) error {
	if movie.PlatformID == nil {
		return nil
	}
	if err := checkID(*movie.PlatformID); err != nil {
		return err
	}
	if _, ok := s.platforms[*movie.PlatformID]; !ok {
		return repository.ErrForeignKeyViolated
	}
	return nil
}

func (s *Store) checkReview(review *entity.Review) error {
	if err := checkID(review.WatchListID); err != nil {
		return err
	}
	if _, ok := s.movies[review.WatchListID]; !ok {
		return repository.ErrForeignKeyViolated
	}
	for id, other := range s.reviews {
		if other.AuthorID == review.AuthorID && id != review.ID {
			return repository.ErrDuplicateKey
		}
	}
	return nil
}

func (s *Store) deleteMovie(id uint) {
	delete(s.movies, id)
	for reviewID, review := range s.reviews {
		if review.WatchListID == id {
			delete(s.reviews, reviewID)
		}
	}
}

type watchLists struct{ s *Store }

func (r *watchLists) List(_ context.Context) ([]entity.WatchList, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	out := []entity.WatchList{}
	for _, id := range sortedKeys(r.s.movies) {
		out = append(out, r.s.loadMovie(id))
	}
	return out, nil
}

func (r *watchLists) GetByID(_ context.Context, id uint) (*entity.WatchList, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	if err := checkID(id); err != nil {
		return nil, err
	}
	if _, ok := r.s.movies[id]; !ok {
		return nil, repository.ErrNotFound
	}
	movie := r.s.loadMovie(id)
	return &movie, nil
}

func (r *watchLists) ExistsByID(_ context.Context, id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return false, r.s.err
	}
	if err := checkID(id); err != nil {
		return false, err
	}
	_, ok := r.s.movies[id]
	return ok, nil
}

func (r *watchLists) Create(_ context.Context, movie *entity.WatchList) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if err := r.s.checkMovie(movie); err != nil {
		return err
	}
	movie.ID = r.s.id("watchlist")
	stored := *movie
	stored.Reviews = nil
	r.s.movies[movie.ID] = stored
	return nil
}

func (r *watchLists) Update(_ context.Context, movie *entity.WatchList) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if _, ok := r.s.movies[movie.ID]; !ok {
		return repository.ErrNotFound
	}
	if err := r.s.checkMovie(movie); err != nil {
		return err
	}
	stored := *movie
	stored.Reviews = nil
	r.s.movies[movie.ID] = stored
	return nil
}

func (r *watchLists) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if err := checkID(id); err != nil {
		return err
	}
	if _, ok := r.s.movies[id]; !ok {
		return repository.ErrNotFound
	}
	r.s.deleteMovie(id)
	return nil
}

type platforms struct{ s *Store }

func (r *platforms) List(_ context.Context, withReviews bool) ([]entity.StreamPlatform, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	out := []entity.StreamPlatform{}
	for _, id := range sortedKeys(r.s.platforms) {
		out = append(out, r.s.loadPlatform(id, withReviews))
	}
	return out, nil
}

func (r *platforms) GetByID(_ context.Context, id uint, withReviews bool) (*entity.StreamPlatform, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	if err := checkID(id); err != nil {
		return nil, err
	}
	if _, ok := r.s.platforms[id]; !ok {
		return nil, repository.ErrNotFound
	}
	platform := r.s.loadPlatform(id, withReviews)
	return &platform, nil
}

func (r *platforms) ExistsByID(_ context.Context, id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return false, r.s.err
	}
	if err := checkID(id); err != nil {
		return false, err
	}
	_, ok := r.s.platforms[id]
	return ok, nil
}

func (r *platforms) Create(_ context.Context, platform *entity.StreamPlatform) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	platform.ID = r.s.id("platform")
	stored := *platform
	stored.WatchList = nil
	r.s.platforms[platform.ID] = stored
	return nil
}

func (r *platforms) Update(_ context.Context, platform *entity.StreamPlatform) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if _, ok := r.s.platforms[platform.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *platform
	stored.WatchList = nil
	r.s.platforms[platform.ID] = stored
	return nil
}

func (r *platforms) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if err := checkID(id); err != nil {
		return err
	}
	if _, ok := r.s.platforms[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.platforms, id)
	for movieID, movie := range r.s.movies {
		if movie.PlatformID != nil && *movie.PlatformID == id {
			r.s.deleteMovie(movieID)
		}
	}
	return nil
}

type reviews struct{ s *Store }

func (r *reviews) List(_ context.Context) ([]entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	out := []entity.Review{}
	for _, id := range sortedKeys(r.s.reviews) {
		out = append(out, r.s.reviews[id])
	}
	return out, nil
}

func (r *reviews) GetByID(_ context.Context, id uint) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}
	if err := checkID(id); err != nil {
		return nil, err
	}
	review, ok := r.s.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &review, nil
}

func (r *reviews) ExistsByAuthor(_ context.Context, authorID uuid.UUID, excludeID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return false, r.s.err
	}
	for id, review := range r.s.reviews {
		if review.AuthorID == authorID && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *reviews) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if err := r.s.checkReview(review); err != nil {
		return err
	}
	review.ID = r.s.id("review")
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *reviews) Update(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if _, ok := r.s.reviews[review.ID]; !ok {
		return repository.ErrNotFound
	}
	if err := r.s.checkReview(review); err != nil {
		return err
	}
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *reviews) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	if err := checkID(id); err != nil {
		return err
	}
	if _, ok := r.s.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.reviews, id)
	return nil
}
