package persistence

import (
	"context"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
)

// TransactionRepository is the append-only ledger. Records are never updated or deleted.
type TransactionRepository interface {
	// Create appends a ledger record and sets its ID
	//
	// Possible errors:
	// - ErrInvalidTransaction: If the record violates a storage constraint
	// - ErrStorageConflict: If a concurrent transaction conflicts with the insert
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListForUser returns the deposits and withdrawals owned by userID and the
	// transfers whose source or target is walletID, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListForUser(ctx context.Context, userID, walletID uint64) ([]*entity.Transaction, error)
}
