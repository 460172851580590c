package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnqbao/gau-watchlist-service/http/controller/dto"
)

func TestReview_CreateAndEmbedInMovie(t *testing.T) {
	s := newTestServer(t, "nested")
	movieID := s.createMovie(t, gin.H{"name": "Inception", "description": "A heist movie"})
	author := uuid.New()

	w := s.do(t, http.MethodPost, "/watch/review/", gin.H{
		"rating":      5,
		"description": "Mind bending",
		"watchlist":   movieID,
		"author":      author.String(),
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.ReviewResponseDTO](t, w)
	assert.Equal(t, 5, created.Rating)
	assert.True(t, created.Active)
	assert.Equal(t, author, created.Author)

	movie := decode[dto.WatchListResponseDTO](t, s.do(t, http.MethodGet, "/watch/1/", nil))
	require.Len(t, movie.Reviews, 1)
	assert.Equal(t, created, movie.Reviews[0])
}

func TestReview_UnknownWatchList(t *testing.T) {
	s := newTestServer(t, "nested")

	w := s.do(t, http.MethodPost, "/watch/review/", gin.H{"rating": 3, "watchlist": 12, "author": uuid.NewString()})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"watchlist":["Invalid pk \"12\" - object does not exist."]}`, w.Body.String())
}

func TestReview_DuplicateAuthor(t *testing.T) {
	s := newTestServer(t, "nested")
	movieID := s.createMovie(t, gin.H{"name": "Inception", "description": "A heist movie"})
	author := uuid.NewString()

	body := gin.H{"rating": 4, "watchlist": movieID, "author": author}
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/watch/review/", body).Code)

	w := s.do(t, http.MethodPost, "/watch/review/", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"author":["review with this author already exists."]}`, w.Body.String())

	// Updating the existing review keeps its own author.
	body["rating"] = 2
	w = s.do(t, http.MethodPut, "/watch/review/1", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 2, decode[dto.ReviewResponseDTO](t, w).Rating)
}

func TestReview_Validation(t *testing.T) {
	s := newTestServer(t, "nested")

	w := s.do(t, http.MethodPost, "/watch/review/", gin.H{"rating": 6, "watchlist": 1, "author": "someone"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"rating":["Ensure this value is less than or equal to 5."],
		"author":["Must be a valid UUID."]
	}`, w.Body.String())
}

func TestReview_GetDeleteNotFound(t *testing.T) {
	s := newTestServer(t, "nested")
	movieID := s.createMovie(t, gin.H{"name": "Inception", "description": "A heist movie"})
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/watch/review/",
		gin.H{"rating": 4, "watchlist": movieID, "author": uuid.NewString()}).Code)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/watch/review/1", nil).Code)
	assert.Len(t, decode[[]dto.ReviewResponseDTO](t, s.do(t, http.MethodGet, "/watch/review/", nil)), 1)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/watch/review/1", nil).Code)
	w := s.do(t, http.MethodDelete, "/watch/review/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Review not found."}`, w.Body.String())
}

func TestReview_CascadeWithMovie(t *testing.T) {
	s := newTestServer(t, "nested")
	movieID := s.createMovie(t, gin.H{"name": "Inception", "description": "A heist movie"})
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/watch/review/",
		gin.H{"rating": 4, "watchlist": movieID, "author": uuid.NewString()}).Code)

	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/watch/1/", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/watch/review/1", nil).Code)
}

func TestReview_UpdateNotFound(t *testing.T) {
	s := newTestServer(t, "nested")
	movieID := s.createMovie(t, gin.H{"name": "Inception", "description": "A heist movie"})

	w := s.do(t, http.MethodPut, "/watch/review/42", gin.H{"rating": 3, "watchlist": movieID, "author": uuid.NewString()})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Review not found."}`, w.Body.String())
	assert.Empty(t, decode[[]dto.ReviewResponseDTO](t, s.do(t, http.MethodGet, "/watch/review/", nil)))
}
