package dto

import (
	"github.com/google/uuid"
	"github.com/tnqbao/gau-watchlist-service/entity"
)

const DuplicateAuthorMessage = "review with this author already exists."

type ReviewRequestDTO struct {
	Rating      *int   `json:"rating" binding:"required,min=1,max=5"`
	Description string `json:"description" binding:"max=200"`
	Active      *bool  `json:"active"`
	WatchList   *uint  `json:"watchlist" binding:"required"`
	Author      string `json:"author" binding:"required,uuid"`
}

func (r *ReviewRequestDTO) validateFields() ValidationErrors { return nil }

func (r *ReviewRequestDTO) validateObject() ValidationErrors { return nil }

// AuthorID must only be called after Bind succeeded.
func (r *ReviewRequestDTO) AuthorID() uuid.UUID {
	return uuid.MustParse(r.Author)
}

func (r *ReviewRequestDTO) ToEntity() *entity.Review {
	review := &entity.Review{}
	r.ApplyTo(review)
	return review
}

func (r *ReviewRequestDTO) ApplyTo(review *entity.Review) {
	review.Rating = *r.Rating
	review.Description = r.Description
	review.Active = r.Active == nil || *r.Active
	review.WatchListID = *r.WatchList
	review.AuthorID = r.AuthorID()
}

type ReviewResponseDTO struct {
	ID          uint      `json:"id"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	WatchList   uint      `json:"watchlist"`
	Author      uuid.UUID `json:"author"`
}

func NewReviewResponse(review *entity.Review) ReviewResponseDTO {
	return ReviewResponseDTO{
		ID:          review.ID,
		Rating:      review.Rating,
		Description: review.Description,
		Active:      review.Active,
		WatchList:   review.WatchListID,
		Author:      review.AuthorID,
	}
}

func NewReviewListResponse(reviews []entity.Review) []ReviewResponseDTO {
	out := make([]ReviewResponseDTO, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
