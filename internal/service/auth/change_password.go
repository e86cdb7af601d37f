package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/pkg/ctxutil"
)

// ChangePassword verifies the current password and stores a hash of the new one.
// Returns ErrIncorrectPassword, leaving the stored hash untouched, when the
// current password does not verify. Other sessions of the user stay valid.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	if !checkPassword(user.PasswordHash, input.CurrentPassword) {
		return domain.ErrIncorrectPassword
	}

	hash, err := s.hashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("auth.ChangePassword update: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.Int64("user_id", userID))
	return nil
}
