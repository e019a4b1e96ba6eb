// Package httpapp exposes the JSON API over chi. Handlers parse the
// request, delegate to the services and shape the response envelope;
// business rules live one layer down in internal/app.
package httpapp

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"

	"github.com/cesargomez89/songbox/internal/app"
	"github.com/cesargomez89/songbox/internal/logger"
)

type Handler struct {
	Songs   *app.SongService
	Auth    *app.AuthService
	Logger  *logger.Logger
	decoder *form.Decoder
}

func NewHandler(songs *app.SongService, auth *app.AuthService, log *logger.Logger) *Handler {
	return &Handler{
		Songs:   songs,
		Auth:    auth,
		Logger:  log,
		decoder: form.NewDecoder(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/verify-user", h.VerifyUser)
	r.Post("/add-song", h.AddSong)
	r.Get("/songs", h.ListSongs)
	r.Get("/song/{id}", h.GetSong)
	r.Post("/update-song/{id}", h.UpdateSong)
	r.Delete("/song/{id}", h.DeleteSong)
	r.Get("/healthz", h.Health)
}
