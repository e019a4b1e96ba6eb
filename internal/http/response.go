package httpapp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cesargomez89/songbox/internal/apperror"
	"github.com/cesargomez89/songbox/internal/http/dto"
	"github.com/cesargomez89/songbox/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Default().Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP statuses. Validation failures and
// missing rows surface their message; anything else is logged server-side
// and answered with a generic 500 so internals never reach the client.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		}
		writeJSON(w, status, dto.MessageResponse{Success: false, Message: appErr.Message})
		return
	}

	log.Error("Request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, dto.MessageResponse{
		Success: false,
		Message: "Internal server error.",
	})
}
