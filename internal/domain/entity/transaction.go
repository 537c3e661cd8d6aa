package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	tport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of monetary movement
type TransactionType string

// Transaction types
const (
	TypeDeposit  TransactionType = "DEPOSIT"
	TypeWithdraw TransactionType = "WITHDRAW"
	TypeTransfer TransactionType = "TRANSFER"
)

// TransactionStatus defines possible status values for a ledger record
type TransactionStatus string

// StatusCompleted is the status of every accepted ledger record
const StatusCompleted TransactionStatus = "COMPLETED"

// MaxDescriptionLength bounds the free-text description of a transfer
const MaxDescriptionLength = 255

// ParseTransactionType converts a case-insensitive name into a TransactionType
func ParseTransactionType(value string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(strings.TrimSpace(value))) {
	case TypeDeposit:
		return TypeDeposit, nil
	case TypeWithdraw:
		return TypeWithdraw, nil
	case TypeTransfer:
		return TypeTransfer, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, value)
	}
}

// BankDetails is the external account a deposit comes from or a withdrawal goes to
type BankDetails struct {
	BankName          string
	AccountHolderName string
	AccountNumber     string // masked, last 4 digits only
	IFSCCode          string
}

// NewBankDetails builds bank metadata, masking the account number
func NewBankDetails(bankName, accountHolderName, accountNumber, ifscCode string) *BankDetails {
	details := &BankDetails{
		BankName:          strings.TrimSpace(bankName),
		AccountHolderName: strings.TrimSpace(accountHolderName),
		AccountNumber:     MaskAccountNumber(accountNumber),
		IFSCCode:          strings.ToUpper(strings.TrimSpace(ifscCode)),
	}
	if details.IsEmpty() {
		return nil
	}
	return details
}

// IsEmpty reports whether no bank field is set
func (b *BankDetails) IsEmpty() bool {
	return b == nil || (b.BankName == "" && b.AccountHolderName == "" && b.AccountNumber == "" && b.IFSCCode == "")
}

// Transaction is an immutable ledger record
type Transaction struct {
	ID             uint64
	Reference      string // ULID, unique
	Type           TransactionType
	Amount         decimal.Decimal
	Status         TransactionStatus
	UserID         uint64 // owner for deposit/withdraw, sender for transfer
	Bank           *BankDetails
	SourceWalletID *uint64
	TargetWalletID *uint64
	Description    string
	CreatedAt      time.Time
}

// NewDeposit creates the ledger record of a deposit into the user's wallet
func NewDeposit(reference string, userID uint64, amount decimal.Decimal, bank *BankDetails, timeProvider tport.TimeProvider) (*Transaction, error) {
	return newBankTransaction(TypeDeposit, reference, userID, amount, bank, timeProvider)
}

// NewWithdrawal creates the ledger record of a withdrawal from the user's wallet
func NewWithdrawal(reference string, userID uint64, amount decimal.Decimal, bank *BankDetails, timeProvider tport.TimeProvider) (*Transaction, error) {
	return newBankTransaction(TypeWithdraw, reference, userID, amount, bank, timeProvider)
}

func newBankTransaction(
	txType TransactionType,
	reference string,
	userID uint64,
	amount decimal.Decimal,
	bank *BankDetails,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if bank.IsEmpty() {
		bank = nil
	}

	tx := &Transaction{
		Reference: reference,
		Type:      txType,
		Amount:    amount,
		Status:    StatusCompleted,
		UserID:    userID,
		Bank:      bank,
		CreatedAt: timeProvider.Now(),
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTransfer creates the ledger record of a wallet to wallet transfer, attributed to the sender
func NewTransfer(
	reference string,
	senderUserID uint64,
	sourceWalletID uint64,
	targetWalletID uint64,
	amount decimal.Decimal,
	description string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	source := sourceWalletID
	target := targetWalletID

	tx := &Transaction{
		Reference:      reference,
		Type:           TypeTransfer,
		Amount:         amount,
		Status:         StatusCompleted,
		UserID:         senderUserID,
		SourceWalletID: &source,
		TargetWalletID: &target,
		Description:    strings.TrimSpace(description),
		CreatedAt:      timeProvider.Now(),
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

// Validate checks the ledger invariants of the record
func (t *Transaction) Validate() error {
	if t.Reference == "" {
		return fmt.Errorf("%w: reference is required", errs.ErrInvalidTransaction)
	}

	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}

	if t.UserID == 0 {
		return fmt.Errorf("%w: owning user is required", errs.ErrInvalidTransaction)
	}

	switch t.Type {
	case TypeDeposit, TypeWithdraw:
		if t.SourceWalletID != nil || t.TargetWalletID != nil {
			return fmt.Errorf("%w: %s must not reference wallets", errs.ErrInvalidTransaction, t.Type)
		}
	case TypeTransfer:
		if t.SourceWalletID == nil || t.TargetWalletID == nil || *t.SourceWalletID == 0 || *t.TargetWalletID == 0 {
			return fmt.Errorf("%w: transfer requires source and target wallets", errs.ErrInvalidTransaction)
		}
		if *t.SourceWalletID == *t.TargetWalletID {
			return fmt.Errorf("%w: source and target wallets must differ", errs.ErrInvalidRecipient)
		}
		if t.Bank != nil {
			return fmt.Errorf("%w: transfer must not carry bank details", errs.ErrInvalidTransaction)
		}
		if len(t.Description) > MaxDescriptionLength {
			return fmt.Errorf("%w: description longer than %d characters", errs.ErrInvalidRequest, MaxDescriptionLength)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", errs.ErrInvalidTransaction, t.Type)
	}

	return nil
}

// FormattedAmount returns the amount with 2 decimal places
func (t *Transaction) FormattedAmount() string {
	return FormatAmount(t.Amount)
}

// IsTransfer reports whether the record moves money between two wallets
func (t *Transaction) IsTransfer() bool {
	return t.Type == TypeTransfer
}

// SentFrom reports whether walletID is the source of this transfer
func (t *Transaction) SentFrom(walletID uint64) bool {
	return t.SourceWalletID != nil && *t.SourceWalletID == walletID
}

// SentTo reports whether walletID is the target of this transfer
func (t *Transaction) SentTo(walletID uint64) bool {
	return t.TargetWalletID != nil && *t.TargetWalletID == walletID
}
