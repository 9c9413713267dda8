// Package auth implements the login flow: credential verification against
// the configured user list and access token issuance.
package auth

import (
	"log/slog"
	"time"
)

// userVerifier checks a username/password pair against the configured users.
type userVerifier interface {
	Verify(username, password string) bool
}

// tokenIssuer mints access tokens for authenticated users.
type tokenIssuer interface {
	GenerateAccessToken(username string) (token string, expiresAt time.Time, err error)
}

// Service implements auth operations.
type Service struct {
	users userVerifier
	jwt   tokenIssuer
	log   *slog.Logger
}

// NewService creates a new auth service instance.
func NewService(log *slog.Logger, users userVerifier, jwt tokenIssuer) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		log:   log.With("service", "auth"),
	}
}
