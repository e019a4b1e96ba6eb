package httpapp

import (
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/songbox/internal/apperror"
	"github.com/cesargomez89/songbox/internal/constants"
	"github.com/cesargomez89/songbox/internal/http/dto"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "ok"})
}

func (h *Handler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	password := r.URL.Query().Get("password")

	ok, message, err := h.Auth.Verify(username, password)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Success: ok, Message: message})
}

func (h *Handler) AddSong(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(constants.MaxUploadMemory); err != nil {
		writeError(w, h.Logger, apperror.ValidationFailed("body", "multipart form data is required"))
		return
	}

	var req dto.AddSongRequest
	if err := h.decoder.Decode(&req, url.Values(r.MultipartForm.Value)); err != nil {
		writeError(w, h.Logger, apperror.ValidationFailed("body", "invalid form data"))
		return
	}

	song, err := h.Songs.Add(req.SongName, req.Artist, req.Album, formFile(r, "cover"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AddSongResponse{
		Success: true,
		Message: "Song added successfully.",
		Data:    song,
	})
}

func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) {
	page := dto.ParseIntDefault(r.URL.Query().Get("page"), constants.DefaultPage)
	limit := dto.ParseIntDefault(r.URL.Query().Get("limit"), constants.DefaultLimit)

	songs, total, err := h.Songs.List(page, limit)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	p := dto.NewPagination(page, limit, total)
	writeJSON(w, http.StatusOK, dto.SongListResponse{
		Success:     true,
		Songs:       songs,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
	})
}

func (h *Handler) GetSong(w http.ResponseWriter, r *http.Request) {
	id, err := songID(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	song, err := h.Songs.Get(id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SongResponse{Success: true, Song: song})
}

func (h *Handler) UpdateSong(w http.ResponseWriter, r *http.Request) {
	id, err := songID(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	if err := r.ParseMultipartForm(constants.MaxUploadMemory); err != nil {
		writeError(w, h.Logger, apperror.ValidationFailed("body", "multipart form data is required"))
		return
	}

	var req dto.SongUpdateRequest
	if err := h.decoder.Decode(&req, url.Values(r.MultipartForm.Value)); err != nil {
		writeError(w, h.Logger, apperror.ValidationFailed("body", "invalid form data"))
		return
	}

	song, err := h.Songs.Update(id, req.ToUpdates(), formFile(r, "cover"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SongMessageResponse{
		Success: true,
		Message: "Song updated successfully.",
		Song:    song,
	})
}

func (h *Handler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	id, err := songID(r)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	song, err := h.Songs.Delete(id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SongMessageResponse{
		Success: true,
		Message: "Song deleted successfully.",
		Song:    song,
	})
}

// songID reads the {id} route parameter. Non-numeric ids are rejected as
// client errors instead of being forwarded to the store.
func songID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.ValidationFailed("id", "invalid song id")
	}
	return id, nil
}

// formFile returns the first uploaded file for the field, or nil when the
// request carried none.
func formFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}
