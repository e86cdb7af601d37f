package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/WillSanton/WebSite/internal/domain"
	"github.com/WillSanton/WebSite/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error
}

// CookieSettings controls the session cookie written on login and register.
type CookieSettings struct {
	Name   string
	Secure bool
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc      authService
	cookie   CookieSettings
	maxBytes int64
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cookie CookieSettings, maxBytes int64, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		cookie:   cookie,
		maxBytes: maxBytes,
		log:      logger.With("handler", "auth"),
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, h.maxBytes, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.setSessionCookie(w, result.Cookie, result.ExpiresAt)
	writeJSON(w, http.StatusOK, toUserResponse(result.User))
}

// Register handles POST /api/register. A successful registration is also
// logged in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, h.maxBytes, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.setSessionCookie(w, result.Cookie, result.ExpiresAt)
	writeJSON(w, http.StatusCreated, toUserResponse(result.User))
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out"})
}

// CurrentUser handles GET /api/user.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// ChangePassword handles POST /api/change-password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeJSON(w, r, h.maxBytes, &req) {
		return
	}

	err := h.svc.ChangePassword(r.Context(), auth.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Password changed successfully"})
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleServiceError(w, r, h.log, err, "Username already exists")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, value string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
