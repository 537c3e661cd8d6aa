package usecase

import (
	"context"
	"time"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
)

// BankDetails is the external account supplied with a deposit or withdrawal
type BankDetails struct {
	BankName          string
	AccountHolderName string
	AccountNumber     string
	IFSCCode          string
}

// DepositRequest credits the caller's wallet from an external account
type DepositRequest struct {
	UserID uint64
	Amount string
	Bank   BankDetails
}

// WithdrawRequest debits the caller's wallet to an external account
type WithdrawRequest struct {
	UserID uint64
	Amount string
	Bank   BankDetails
}

// TransferRequest moves money from the caller's wallet to another user's wallet.
// SenderUserID always comes from the authenticated session.
type TransferRequest struct {
	SenderUserID uint64
	Recipient    string // email address or numeric user ID
	Amount       string
	Description  string
}

// TransactionResult describes an accepted operation
type TransactionResult struct {
	Reference string
	Type      entity.TransactionType
	Amount    string
	Balance   string // caller's balance after the operation
	CreatedAt time.Time
}

// TransactionUseCase applies monetary movements atomically against wallets and the ledger
type TransactionUseCase interface {
	// Deposit increments the wallet balance and appends a DEPOSIT record
	Deposit(ctx context.Context, req DepositRequest) (*TransactionResult, error)

	// Withdraw decrements the wallet balance and appends a WITHDRAW record
	Withdraw(ctx context.Context, req WithdrawRequest) (*TransactionResult, error)

	// Transfer moves funds between two wallets and appends one TRANSFER record
	Transfer(ctx context.Context, req TransferRequest) (*TransactionResult, error)
}
