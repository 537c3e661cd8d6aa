package entity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
)

// Registration rules
const (
	MinNameLength     = 3
	MinPasswordLength = 8
)

// User is the account holder a wallet belongs to
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with a validated name and email
func NewUser(name, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinNameLength {
		return nil, fmt.Errorf("%w: name must be at least %d characters", errs.ErrInvalidRequest, MinNameLength)
	}

	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", errs.ErrInvalidRequest)
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		Email:        normalized,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NormalizeEmail validates an email address and lower-cases it
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email address", errs.ErrInvalidRequest)
	}
	return email, nil
}

// ValidatePassword checks the password policy before hashing
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", errs.ErrInvalidRequest, MinPasswordLength)
	}
	return nil
}
