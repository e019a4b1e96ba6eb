package app

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/cesargomez89/songbox/internal/apperror"
	"github.com/cesargomez89/songbox/internal/artwork"
	"github.com/cesargomez89/songbox/internal/constants"
	"github.com/cesargomez89/songbox/internal/domain"
	"github.com/cesargomez89/songbox/internal/logger"
	"github.com/cesargomez89/songbox/internal/store"
	"github.com/cesargomez89/songbox/internal/uploads"
)

// SongService implements the catalog rules: create with a mandatory cover,
// paginated listing, partial updates of only the supplied fields, and
// physical deletes that return the removed row.
type SongService struct {
	Repo    *store.DB
	Uploads *uploads.Store
	Logger  *logger.Logger
}

func NewSongService(repo *store.DB, up *uploads.Store, log *logger.Logger) *SongService {
	return &SongService{Repo: repo, Uploads: up, Logger: log}
}

// Add persists a new song. The cover file is required; requests without one
// are rejected up front instead of failing on a missing file reference.
// When the cover field carries an audio file, its embedded art becomes the
// cover and blank text fields are prefilled from the file's tags.
func (s *SongService) Add(name, artist, album string, cover *multipart.FileHeader) (*domain.Song, error) {
	if cover == nil {
		return nil, apperror.ValidationFailed("cover", "cover file is required")
	}

	coverPath := ""
	if artwork.IsAudio(cover.Filename) {
		md, err := artwork.ExtractFromUpload(cover)
		if err != nil {
			return nil, apperror.ValidationFailed("cover", "could not read audio file")
		}
		if len(md.Picture) == 0 {
			return nil, apperror.ValidationFailed("cover", "audio file has no embedded cover art")
		}
		path, err := s.Uploads.SaveBytes(md.Picture, artwork.ExtForMIME(md.MIME))
		if err != nil {
			return nil, fmt.Errorf("failed to store extracted cover: %w", err)
		}
		coverPath = path
		if name == "" {
			name = md.Title
		}
		if artist == "" {
			artist = md.Artist
		}
		if album == "" {
			album = md.Album
		}
	} else {
		path, err := s.Uploads.SaveFile(cover)
		if err != nil {
			return nil, fmt.Errorf("failed to store cover: %w", err)
		}
		coverPath = path
	}

	name = strings.TrimSpace(name)
	artist = strings.TrimSpace(artist)
	album = strings.TrimSpace(album)
	if name == "" {
		return nil, apperror.ValidationFailed("songName", "song name is required")
	}
	if artist == "" {
		return nil, apperror.ValidationFailed("artist", "artist is required")
	}
	if album == "" {
		return nil, apperror.ValidationFailed("album", "album is required")
	}

	song := &domain.Song{
		Name:   name,
		Artist: artist,
		Album:  album,
		Cover:  coverPath,
	}
	if err := s.Repo.CreateSong(song); err != nil {
		return nil, err
	}

	s.Logger.Info("Song added", "song_id", song.ID, "name", song.Name, "cover", song.Cover)
	return song, nil
}

// List fetches one page of songs in insertion order and the total row
// count. Page and limit below 1 fall back to the defaults.
func (s *SongService) List(page, limit int) ([]*domain.Song, int, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	offset := (page - 1) * limit

	total, err := s.Repo.CountSongs()
	if err != nil {
		return nil, 0, err
	}

	songs, err := s.Repo.ListSongs(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return songs, total, nil
}

func (s *SongService) Get(id int) (*domain.Song, error) {
	return s.Repo.GetSongByID(id)
}

// Update applies the supplied field subset to the song. The cover is only
// touched when a new file arrived with this request; an upload of an audio
// file replaces the cover with its embedded art. With nothing supplied at
// all the request is rejected rather than issuing a no-op statement.
func (s *SongService) Update(id int, updates map[string]interface{}, cover *multipart.FileHeader) (*domain.Song, error) {
	if cover != nil {
		coverPath := ""
		if artwork.IsAudio(cover.Filename) {
			md, err := artwork.ExtractFromUpload(cover)
			if err != nil {
				return nil, apperror.ValidationFailed("cover", "could not read audio file")
			}
			if len(md.Picture) == 0 {
				return nil, apperror.ValidationFailed("cover", "audio file has no embedded cover art")
			}
			coverPath, err = s.Uploads.SaveBytes(md.Picture, artwork.ExtForMIME(md.MIME))
			if err != nil {
				return nil, fmt.Errorf("failed to store extracted cover: %w", err)
			}
		} else {
			path, err := s.Uploads.SaveFile(cover)
			if err != nil {
				return nil, fmt.Errorf("failed to store cover: %w", err)
			}
			coverPath = path
		}
		updates["cover"] = coverPath
	}

	if len(updates) == 0 {
		return nil, apperror.ValidationFailed("fields", "nothing to update")
	}

	if err := s.Repo.UpdateSongPartial(id, updates); err != nil {
		return nil, err
	}

	song, err := s.Repo.GetSongByID(id)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Song updated", "song_id", id, "fields", len(updates))
	return song, nil
}

// Delete removes the song and returns its last snapshot. The cover file on
// disk is intentionally left behind.
func (s *SongService) Delete(id int) (*domain.Song, error) {
	song, err := s.Repo.DeleteSong(id)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Song deleted", "song_id", id, "name", song.Name)
	return song, nil
}
