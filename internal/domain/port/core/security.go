package core

import "time"

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash returns a salted hash of the password
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

// Identity is the authenticated caller attached to a request
type Identity struct {
	UserID uint64
	Email  string
}

// TokenManager issues and verifies session tokens
type TokenManager interface {
	// Issue creates a signed token for identity and returns it with its expiry
	Issue(identity Identity) (string, time.Time, error)
	// Parse verifies token and returns the identity it carries.
	// Fails with ErrUnauthorized for malformed, expired or foreign tokens.
	Parse(token string) (*Identity, error)
}
