package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/pkg/ctxutil"
)

// CreateIntent starts an assistant unlock payment for the caller.
func (s *Service) CreateIntent(ctx context.Context) (*domain.PaymentIntent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.enabled {
		return nil, domain.ErrUnavailable
	}

	intent, err := s.gateway.CreateIntent(ctx, userID, s.amount, s.currency)
	if err != nil {
		return nil, fmt.Errorf("payment.CreateIntent: %w", err)
	}

	s.log.InfoContext(ctx, "payment intent created",
		slog.Int64("user_id", userID),
		slog.String("intent_id", intent.ID),
	)

	return intent, nil
}

// Status polls the caller's payment intent. A succeeded intent activates
// the caller's assistant; polling again after activation is harmless.
// Intents belonging to someone else are reported as ErrNotFound.
func (s *Service) Status(ctx context.Context, intentID string) (domain.PaymentStatus, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if !s.enabled {
		return "", domain.ErrUnavailable
	}

	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return "", domain.Invalid("id", "required")
	}

	intent, err := s.gateway.GetIntent(ctx, intentID)
	if err != nil {
		return "", fmt.Errorf("payment.Status: %w", err)
	}

	if intent.UserID != userID {
		return "", fmt.Errorf("payment.Status intent %s: %w", intentID, domain.ErrNotFound)
	}

	if intent.Status == domain.PaymentSucceeded {
		if _, err := s.activator.Activate(ctx, userID); err != nil {
			return "", fmt.Errorf("payment.Status activate: %w", err)
		}
	}

	return intent.Status, nil
}
