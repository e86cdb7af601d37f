package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/pkg/ctxutil"
)

type sessionResolver interface {
	ResolveSession(ctx context.Context, cookie string) (*domain.Session, error)
}

// Session attaches the caller's user and session ids to the context when the
// request carries a valid session cookie. Missing, forged or expired cookies
// leave the request anonymous; RequireAuth decides whether that is allowed.
func Session(resolver sessionResolver, cookieName string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			sess, err := resolver.ResolveSession(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					next.ServeHTTP(w, r)
					return
				}
				logger.ErrorContext(r.Context(), "session lookup failed", slog.String("error", err.Error()))
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), sess.UserID)
			ctx = ctxutil.WithSessionID(ctx, sess.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401 before the handler runs.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
