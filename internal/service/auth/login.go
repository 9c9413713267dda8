package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/probelab/gqlprobe/internal/domain"
)

// LoginInput holds the login credentials.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks that both credentials are present.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Login verifies the credentials and issues an access token.
// An unknown username and a wrong password both return ErrUnauthorized;
// the caller cannot tell which check failed.
func (s *Service) Login(ctx context.Context, input LoginInput) (domain.AuthPayload, error) {
	if err := input.Validate(); err != nil {
		return domain.AuthPayload{}, err
	}

	if !s.users.Verify(input.Username, input.Password) {
		s.log.WarnContext(ctx, "login failed", slog.String("username", input.Username))
		return domain.AuthPayload{}, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(input.Username)
	if err != nil {
		return domain.AuthPayload{}, fmt.Errorf("generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "login succeeded", slog.String("username", input.Username))

	return domain.AuthPayload{
		Token:     token,
		ExpiresAt: expiresAt,
		Viewer:    domain.Viewer{Username: input.Username},
	}, nil
}
