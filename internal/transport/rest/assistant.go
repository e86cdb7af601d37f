package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/internal/service/assistant"
)

type assistantService interface {
	Get(ctx context.Context) (*domain.WitchAssistant, error)
	Update(ctx context.Context, input assistant.UpdateInput) (*domain.WitchAssistant, error)
}

// AssistantHandler serves the witch assistant endpoints.
type AssistantHandler struct {
	svc      assistantService
	maxBytes int64
	log      *slog.Logger
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(svc assistantService, maxBytes int64, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "assistant")}
}

// updateAssistantRequest uses pointers so absent fields stay untouched.
type updateAssistantRequest struct {
	Name          *string               `json:"name"`
	Customization *domain.Customization `json:"customization"`
	Active        *bool                 `json:"active"`
}

// Get handles GET /api/witch-assistant. Responds with null when the user
// has not unlocked an assistant yet.
func (h *AssistantHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssistantResponse(a))
}

// Update handles PATCH /api/witch-assistant.
func (h *AssistantHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateAssistantRequest
	if !decodeJSON(w, r, h.maxBytes, &req) {
		return
	}

	a, err := h.svc.Update(r.Context(), assistant.UpdateInput{
		Name:          req.Name,
		Customization: req.Customization,
		Active:        req.Active,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssistantResponse(a))
}

func (h *AssistantHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleServiceError(w, r, h.log, err, "Assistant already exists")
}
