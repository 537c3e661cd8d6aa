package persistence

import (
	"context"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create stores a new user and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// ListExcept returns every user other than excludeID, ordered by name
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListExcept(ctx context.Context, excludeID uint64) ([]*entity.User, error)

	// NamesByWalletIDs maps each wallet ID to the name of its owner.
	// Unknown wallet IDs are absent from the result.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	NamesByWalletIDs(ctx context.Context, walletIDs []uint64) (map[uint64]string, error)
}
