package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/WillSanton/WebSite/internal/domain"
)

// Login authenticates with username + password and establishes a session.
// Missing fields, unknown usernames and wrong passwords all return
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if !input.complete() {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(input.Password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !checkPassword(user.PasswordHash, input.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.establishSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login establish session: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return result, nil
}
