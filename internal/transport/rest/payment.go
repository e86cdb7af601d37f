package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/WillSanton/WebSite/internal/domain"
)

type paymentService interface {
	CreateIntent(ctx context.Context) (*domain.PaymentIntent, error)
	Status(ctx context.Context, intentID string) (domain.PaymentStatus, error)
}

// PaymentHandler serves the assistant unlock payment endpoints.
type PaymentHandler struct {
	svc paymentService
	log *slog.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc paymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, log: logger.With("handler", "payment")}
}

type clientSecretResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type paymentStatusResponse struct {
	Status string `json:"status"`
}

// CreateIntent handles POST /api/create-payment-intent.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	intent, err := h.svc.CreateIntent(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, clientSecretResponse{ClientSecret: intent.ClientSecret})
}

// Status handles GET /api/payment-status/{id}.
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Status(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paymentStatusResponse{Status: string(status)})
}

func (h *PaymentHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleServiceError(w, r, h.log, err, "Already unlocked")
}
