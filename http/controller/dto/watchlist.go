package dto

import (
	"unicode/utf8"

	"github.com/tnqbao/gau-watchlist-service/entity"
)

type WatchListRequestDTO struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"required,max=200"`
	Active      *bool  `json:"active"`
	Platform    *uint  `json:"platform"`
}

func (r *WatchListRequestDTO) validateFields() ValidationErrors {
	errs := ValidationErrors{}
	if r.Name != "" && utf8.RuneCountInString(r.Name) <= 3 {
		errs.Add("name", "Name is too short!")
	}
	return errs
}

func (r *WatchListRequestDTO) validateObject() ValidationErrors {
	if r.Name == r.Description {
		return ValidationErrors{"name": {"The name and description should not be the same."}}
	}
	return nil
}

func (r *WatchListRequestDTO) ToEntity() *entity.WatchList {
	movie := &entity.WatchList{}
	r.ApplyTo(movie)
	return movie
}

// ApplyTo replaces every client-owned field. Omitted optional fields fall
// back to their defaults: active is true, platform is empty.
func (r *WatchListRequestDTO) ApplyTo(movie *entity.WatchList) {
	movie.Name = r.Name
	movie.Description = r.Description
	movie.Active = r.Active == nil || *r.Active
	movie.PlatformID = r.Platform
}

type WatchListResponseDTO struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Active      bool                `json:"active"`
	Platform    *uint               `json:"platform"`
	LenName     int                 `json:"len_name"`
	Reviews     []ReviewResponseDTO `json:"reviews"`
}

func NewWatchListResponse(movie *entity.WatchList) WatchListResponseDTO {
	return WatchListResponseDTO{
		ID:          movie.ID,
		Name:        movie.Name,
		Description: movie.Description,
		Active:      movie.Active,
		Platform:    movie.PlatformID,
		LenName:     utf8.RuneCountInString(movie.Name),
		Reviews:     NewReviewListResponse(movie.Reviews),
	}
}

func NewWatchListListResponse(movies []entity.WatchList) []WatchListResponseDTO {
	out := make([]WatchListResponseDTO, 0, len(movies))
	for i := range movies {
		out = append(out, NewWatchListResponse(&movies[i]))
	}
	return out
}
