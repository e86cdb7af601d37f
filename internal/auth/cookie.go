package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieSigner signs and verifies session cookie values. The value is an
// HS256 JWT whose jti is the session id and whose subject is the user id;
// the session store remains the source of truth.
type CookieSigner struct {
	secret []byte
	issuer string
}

// NewCookieSigner creates a new signer.
// secret must be at least 32 characters for HS256 security.
func NewCookieSigner(secret, issuer string) *CookieSigner {
	return &CookieSigner{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Sign creates the cookie value for a session.
func (s *CookieSigner) Sign(sessionID uuid.UUID, userID int64, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sessionID.String(),
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    s.issuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}

	return signed, nil
}

// Verify parses a cookie value and returns the session id and user id.
func (s *CookieSigner) Verify(value string) (uuid.UUID, int64, error) {
	if value == "" {
		return uuid.Nil, 0, fmt.Errorf("cookie is empty")
	}

	token, err := jwt.ParseWithClaims(value, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("parse cookie: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, 0, fmt.Errorf("invalid cookie claims")
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("invalid session id: %w", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return uuid.Nil, 0, fmt.Errorf("invalid subject %q", claims.Subject)
	}

	return sessionID, userID, nil
}
