package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/WillSanton/WebSite/internal/domain"
)

// handleServiceError maps the shared sentinel errors to responses.
// conflict is the message used for ErrAlreadyExists, which every handler
// words differently.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, conflict string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidation(w, ve)
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrIncorrectPassword):
		writeError(w, http.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, conflict)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Service unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
