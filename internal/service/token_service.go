package service

import (
	"time"

	"telemetry/internal/domain"
)

// Claims is the identity a verified session token asserts.
type Claims struct {
	UserID domain.UserID
	Email  string
}

type TokenService interface {
	// Issue signs a session token for the user. ttl <= 0 uses the service's
	// configured default.
	Issue(userID domain.UserID, email string, ttl time.Duration) (string, error)
	// Verify returns the embedded claims, domain.ErrTokenExpired once the
	// expiry has passed, or domain.ErrTokenMalformed for anything unparseable.
	Verify(token string) (*Claims, error)
	DefaultTTL() time.Duration
}
