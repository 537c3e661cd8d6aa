package usecase

import (
	"context"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
)

// BalanceView is the formatted balance of a wallet
type BalanceView struct {
	UserID   uint64
	WalletID uint64
	Balance  string // 2 decimal places
}

// LedgerUseCase is the read side over wallets and the ledger
type LedgerUseCase interface {
	// GetBalance returns the current balance of the user's wallet
	GetBalance(ctx context.Context, userID uint64) (*BalanceView, error)

	// ListTransactions returns the user's history, newest first
	ListTransactions(ctx context.Context, userID uint64) ([]entity.TransactionView, error)
}
