package dto

import "github.com/tnqbao/gau-watchlist-service/entity"

// RelationMode selects how a platform's watchlist entries are embedded.
type RelationMode int

const (
	RelationNested RelationMode = iota
	RelationHyperlink
)

func ParseRelationMode(mode string) RelationMode {
	if mode == "hyperlink" {
		return RelationHyperlink
	}
	return RelationNested
}

// Linker returns the absolute detail URL of a watchlist entry.
type Linker func(id uint) string

type StreamPlatformRequestDTO struct {
	Name        string `json:"name" binding:"required,max=30"`
	Description string `json:"description" binding:"required,max=150"`
}

func (r *StreamPlatformRequestDTO) validateFields() ValidationErrors { return nil }

func (r *StreamPlatformRequestDTO) validateObject() ValidationErrors { return nil }

func (r *StreamPlatformRequestDTO) ToEntity() *entity.StreamPlatform {
	platform := &entity.StreamPlatform{}
	r.ApplyTo(platform)
	return platform
}

func (r *StreamPlatformRequestDTO) ApplyTo(platform *entity.StreamPlatform) {
	platform.Name = r.Name
	platform.Description = r.Description
}

type StreamPlatformResponseDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// WatchList is []WatchListResponseDTO or, in hyperlink mode, []string.
	WatchList interface{} `json:"watchlist"`
}

func NewStreamPlatformResponse(platform *entity.StreamPlatform, mode RelationMode, link Linker) StreamPlatformResponseDTO {
	resp := StreamPlatformResponseDTO{
		ID:          platform.ID,
		Name:        platform.Name,
		Description: platform.Description,
	}

	if mode == RelationHyperlink && link != nil {
		links := make([]string, 0, len(platform.WatchList))
		for _, movie := range platform.WatchList {
			links = append(links, link(movie.ID))
		}
		resp.WatchList = links
		return resp
	}

	resp.WatchList = NewWatchListListResponse(platform.WatchList)
	return resp
}

func NewStreamPlatformListResponse(platforms []entity.StreamPlatform, mode RelationMode, link Linker) []StreamPlatformResponseDTO {
	out := make([]StreamPlatformResponseDTO, 0, len(platforms))
	for i := range platforms {
		out = append(out, NewStreamPlatformResponse(&platforms[i], mode, link))
	}
	return out
}
