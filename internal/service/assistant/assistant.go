package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/pkg/ctxutil"
)

// Get returns the caller's assistant, or nil when none has been unlocked yet.
func (s *Service) Get(ctx context.Context) (*domain.WitchAssistant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.assistants.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("assistant.Get: %w", err)
	}
	return a, nil
}

// Update applies a partial update to the caller's assistant.
// Returns ErrNotFound when the caller has no assistant.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.WitchAssistant, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.assistants.Update(ctx, userID, input.patch())
	if err != nil {
		return nil, fmt.Errorf("assistant.Update: %w", err)
	}

	s.log.InfoContext(ctx, "assistant updated", slog.Int64("user_id", userID), slog.Int64("assistant_id", a.ID))
	return a, nil
}

// Activate creates the user's assistant with defaults. When the user already
// has one, the existing assistant is returned unchanged.
func (s *Service) Activate(ctx context.Context, userID int64) (*domain.WitchAssistant, error) {
	a, err := s.assistants.Activate(ctx, userID)
	if err == nil {
		s.log.InfoContext(ctx, "assistant activated", slog.Int64("user_id", userID), slog.Int64("assistant_id", a.ID))
		return a, nil
	}

	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("assistant.Activate: %w", err)
	}

	existing, err := s.assistants.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("assistant.Activate get existing: %w", err)
	}
	return existing, nil
}
