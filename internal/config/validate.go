package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("auth.session_secret must be at least 32 characters (got %d)", len(c.Auth.SessionSecret))
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if c.Payment.Enabled() && c.Payment.AmountCents <= 0 {
		return fmt.Errorf("payment.amount_cents must be > 0 (got %d)", c.Payment.AmountCents)
	}

	if c.Storage.Enabled() && c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket is required when storage.endpoint is set")
	}

	return nil
}

func (s *SessionConfig) validate() error {
	switch s.Backend {
	case "postgres", "redis":
	default:
		return fmt.Errorf("backend must be postgres or redis (got %q)", s.Backend)
	}
	if s.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", s.TTL)
	}
	if s.CookieName == "" {
		return fmt.Errorf("cookie_name is required")
	}
	if _, err := cron.ParseStandard(s.CleanupSchedule); err != nil {
		return fmt.Errorf("cleanup_schedule: %w", err)
	}
	return nil
}
