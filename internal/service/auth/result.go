package auth

import (
	"time"

	"github.com/WillSanton/WebSite/internal/domain"
)

// AuthResult is returned by Login and Register.
type AuthResult struct {
	User      *domain.User
	Cookie    string // signed session cookie value
	ExpiresAt time.Time
}
