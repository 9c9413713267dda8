package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/probelab/gqlprobe/internal/config"
)

// UserRegistry holds the static test users configured for the server.
// Passwords are stored as bcrypt hashes only.
type UserRegistry struct {
	hashes map[string]string
}

// NewUserRegistry builds a registry from parsed config credentials.
func NewUserRegistry(creds []config.Credential) *UserRegistry {
	hashes := make(map[string]string, len(creds))
	for _, c := range creds {
		hashes[c.Username] = c.PasswordHash
	}
	return &UserRegistry{hashes: hashes}
}

// Verify checks a username/password pair against the registry.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (r *UserRegistry) Verify(username, password string) bool {
	hash, ok := r.hashes[username]
	if !ok {
		// Burn a comparison anyway so unknown users cost the same as
		// known users with a wrong password.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Len returns the number of configured users.
func (r *UserRegistry) Len() int { return len(r.hashes) }

// dummyHash is a valid bcrypt hash of an unguessable random string,
// used to equalize timing for unknown usernames.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0H1S8rXGKbqkaQpBRy1sZ1B9mPS"
