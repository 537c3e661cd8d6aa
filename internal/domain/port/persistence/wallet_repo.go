package persistence

import (
	"context"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// WalletRepository defines the storage operations on wallets.
// Balances are only changed through Credit and Debit.
type WalletRepository interface {
	// Create stores the wallet of a newly registered user
	//
	// Possible errors:
	// - ErrDuplicateUser: If the user already owns a wallet
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, wallet *entity.Wallet) error

	// GetByUserID retrieves the wallet owned by userID
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet
	// - ErrDatabaseConnection: If database connection fails
	GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// Credit increments the balance and returns the updated wallet
	//
	// Possible errors:
	// - ErrWalletNotFound: If the wallet doesn't exist
	// - ErrStorageConflict: If a concurrent transaction modified the wallet
	// - ErrDatabaseConnection: If database connection fails
	Credit(ctx context.Context, walletID uint64, amount decimal.Decimal) (*entity.Wallet, error)

	// Debit decrements the balance only if it stays non-negative and returns the updated wallet
	//
	// Possible errors:
	// - ErrInsufficientFunds: If the balance is lower than amount
	// - ErrWalletNotFound: If the wallet doesn't exist
	// - ErrStorageConflict: If a concurrent transaction modified the wallet
	// - ErrDatabaseConnection: If database connection fails
	Debit(ctx context.Context, walletID uint64, amount decimal.Decimal) (*entity.Wallet, error)
}
