package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/WillSanton/WebSite/internal/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeValidation renders field errors keyed by their dotted path.
func writeValidation(w http.ResponseWriter, ve *domain.ValidationError) {
	writeJSON(w, http.StatusBadRequest, validationResponse{
		Message: "Validation failed",
		Errors:  ve.Fields(),
	})
}

// decodeJSON reads a single JSON object from a size-limited body.
// An empty body decodes to the zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return false
	}
	writeError(w, http.StatusBadRequest, "Invalid request body")
	return false
}
