package config

import (
	"fmt"
	"time"
)

// AuthSettings configures admin sessions.
type AuthSettings struct {
	Secret     string        `env:"AUTH_SECRET"`
	CookieName string        `mapstructure:"cookie_name"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	if len(s.Secret) < 16 {
		return fmt.Errorf("AUTH_SECRET must be at least 16 characters")
	}
	if s.CookieName == "" {
		return fmt.Errorf("cookie name is required")
	}
	if s.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	return nil
}
