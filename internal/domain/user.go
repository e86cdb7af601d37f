package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash never leaves the service layer.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// Session binds a browser cookie to a user until ExpiresAt.
type Session struct {
	ID        uuid.UUID
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
