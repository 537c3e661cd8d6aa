package usecase

import (
	"context"
	"time"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
)

// RegisterRequest carries the sign-up form
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// Session is the result of a successful login
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AccountUseCase manages users and their sessions
type AccountUseCase interface {
	// Register creates a user together with an empty wallet
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)

	// Authenticate verifies credentials and issues a session token
	Authenticate(ctx context.Context, email, password string) (*Session, error)

	// GetProfile returns the user with the given ID
	GetProfile(ctx context.Context, userID uint64) (*entity.User, error)

	// ListRecipients returns every user the caller can send money to
	ListRecipients(ctx context.Context, userID uint64) ([]*entity.User, error)
}
