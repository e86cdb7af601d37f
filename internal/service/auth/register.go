package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/WillSanton/WebSite/internal/domain"
)

// Register creates a new account and logs it in.
// Returns ErrAlreadyExists if the username is taken; the unique constraint
// is authoritative when two registrations race.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, err := s.users.GetByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("auth.Register lookup: %w", err)
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	user, err := s.users.Create(ctx, input.Username, hash)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	result, err := s.establishSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register establish session: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))

	return result, nil
}
