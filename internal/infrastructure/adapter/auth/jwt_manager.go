package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
)

// Claims is the JWT payload of a session token. The subject holds the user ID.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies HS256 session tokens
type JWTManager struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTManager creates a new token manager
func NewJWTManager(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	return &JWTManager{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

var _ coreport.TokenManager = (*JWTManager)(nil)

// Issue creates a signed token for identity
func (m *JWTManager) Issue(identity coreport.Identity) (string, time.Time, error) {
	now := m.timeProvider.Now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(identity.UserID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Parse verifies token and returns the identity it carries
func (m *JWTManager) Parse(token string) (*coreport.Identity, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.timeProvider.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return nil, errs.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, fmt.Errorf("%w: invalid subject", errs.ErrUnauthorized)
	}

	return &coreport.Identity{UserID: userID, Email: claims.Email}, nil
}
