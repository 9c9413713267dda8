package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	creds, err := ParseUsers(c.Auth.Users)
	if err != nil {
		return fmt.Errorf("auth.users: %w", err)
	}
	c.Auth.Credentials = creds

	if c.Echo.MaxMessageLength <= 0 {
		return fmt.Errorf("echo.max_message_length must be > 0 (got %d)", c.Echo.MaxMessageLength)
	}
	if c.Echo.HistoryMaxLimit <= 0 {
		return fmt.Errorf("echo.history_max_limit must be > 0 (got %d)", c.Echo.HistoryMaxLimit)
	}
	if c.Echo.SessionsMaxLimit <= 0 {
		return fmt.Errorf("echo.sessions_max_limit must be > 0 (got %d)", c.Echo.SessionsMaxLimit)
	}

	if !strings.HasPrefix(c.GraphQL.QueryPath, "/") {
		return fmt.Errorf("graphql.query_path must start with / (got %q)", c.GraphQL.QueryPath)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

// ParseUsers parses a comma-separated list of "username:bcrypt-hash" pairs.
// An empty string returns a nil slice. Usernames must be unique.
func ParseUsers(raw string) ([]Credential, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	seen := make(map[string]struct{})
	parts := strings.Split(raw, ",")
	creds := make([]Credential, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		name, hash, ok := strings.Cut(p, ":")
		if !ok || name == "" || hash == "" {
			return nil, fmt.Errorf("invalid entry %q: want username:bcrypt-hash", p)
		}
		if !strings.HasPrefix(hash, "$2") {
			return nil, fmt.Errorf("entry %q: hash is not a bcrypt hash", name)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate username %q", name)
		}
		seen[name] = struct{}{}
		creds = append(creds, Credential{Username: name, PasswordHash: hash})
	}

	return creds, nil
}
