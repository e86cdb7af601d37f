package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/pkg/ctxutil"
)

// ResolveSession maps a cookie value to a live session.
// Returns ErrUnauthorized for bad signatures, unknown or expired sessions,
// and sessions whose owner does not match the cookie.
func (s *Service) ResolveSession(ctx context.Context, cookie string) (*domain.Session, error) {
	sessionID, userID, err := s.signer.Verify(cookie)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ResolveSession: %w", err)
	}

	if sess.UserID != userID || sess.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	return sess, nil
}

// Logout destroys the current session. Calling it without a session is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	sessionID, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	s.log.InfoContext(ctx, "user logged out", slog.Int64("user_id", userID))
	return nil
}

// CurrentUser returns the authenticated user.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.CurrentUser: %w", err)
	}

	return user, nil
}

// CleanupExpiredSessions removes expired sessions from stores that do not
// expire them natively. Returns the number of sessions deleted.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	deleter, ok := s.sessions.(expiredSessionDeleter)
	if !ok {
		return 0, nil
	}

	count, err := deleter.DeleteExpired(ctx, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int64("count", count))
	}

	return count, nil
}
