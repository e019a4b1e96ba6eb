package dto

import "github.com/cesargomez89/songbox/internal/domain"

type AddSongRequest struct {
	SongName string `form:"songName"`
	Artist   string `form:"artist"`
	Album    string `form:"album"`
}

// SongUpdateRequest carries the optional text fields of a partial update.
// The cover travels separately as a file part.
type SongUpdateRequest struct {
	SongName *string `form:"songName"`
	Artist   *string `form:"artist"`
	Album    *string `form:"album"`
}

// ToUpdates maps the supplied fields to their columns. Nil and empty-string
// values are skipped, so a field cannot be cleared to empty through this
// path.
func (r *SongUpdateRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})

	if r.SongName != nil && *r.SongName != "" {
		updates["name"] = *r.SongName
	}
	if r.Artist != nil && *r.Artist != "" {
		updates["artist"] = *r.Artist
	}
	if r.Album != nil && *r.Album != "" {
		updates["album"] = *r.Album
	}

	return updates
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AddSongResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *domain.Song `json:"data"`
}

type SongListResponse struct {
	Success     bool           `json:"success"`
	Songs       []*domain.Song `json:"songs"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

type SongResponse struct {
	Success bool         `json:"success"`
	Song    *domain.Song `json:"song"`
}

type SongMessageResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Song    *domain.Song `json:"song"`
}
