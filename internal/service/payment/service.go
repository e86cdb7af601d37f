package payment

import (
	"context"
	"log/slog"

	"github.com/WillSanton/WebSite/internal/config"
	"github.com/WillSanton/WebSite/internal/domain"
)

// gateway defines the payment provider interface needed by payment service.
type gateway interface {
	CreateIntent(ctx context.Context, userID, amount int64, currency string) (*domain.PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*domain.PaymentIntent, error)
}

// assistantActivator unlocks the assistant once a payment succeeds.
type assistantActivator interface {
	Activate(ctx context.Context, userID int64) (*domain.WitchAssistant, error)
}

// Service implements the assistant unlock payment flow.
type Service struct {
	log       *slog.Logger
	gateway   gateway
	activator assistantActivator
	enabled   bool
	amount    int64
	currency  string
}

// NewService creates a new payment service instance. When cfg has no
// provider key every operation returns ErrUnavailable and gw may be nil.
func NewService(logger *slog.Logger, gw gateway, activator assistantActivator, cfg config.PaymentConfig) *Service {
	return &Service{
		log:       logger.With("service", "payment"),
		gateway:   gw,
		activator: activator,
		enabled:   cfg.Enabled(),
		amount:    cfg.AmountCents,
		currency:  cfg.Currency,
	}
}

// Enabled reports whether a payment provider is configured.
func (s *Service) Enabled() bool { return s.enabled }
