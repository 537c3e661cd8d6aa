package entity

import (
	"fmt"
	"time"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Wallet holds the balance of exactly one user
type Wallet struct {
	ID        uint64
	UserID    uint64
	balance   decimal.Decimal // never negative (private)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWallet creates an empty wallet for a freshly registered user
func NewWallet(userID uint64, timeProvider coreport.TimeProvider) (*Wallet, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: wallet owner is required", errs.ErrInvalidRequest)
	}

	now := timeProvider.Now()
	return &Wallet{
		UserID:    userID,
		balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreWallet rebuilds a wallet from stored state
func RestoreWallet(id, userID uint64, balance decimal.Decimal, createdAt, updatedAt time.Time) (*Wallet, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: wallet %d has negative balance %s", errs.ErrInternalServer, id, balance.String())
	}

	return &Wallet{
		ID:        id,
		UserID:    userID,
		balance:   balance,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// Balance returns the current balance
func (w *Wallet) Balance() decimal.Decimal {
	return w.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (w *Wallet) FormattedBalance() string {
	return FormatAmount(w.balance)
}

// CanDebit checks if the wallet holds at least amount
func (w *Wallet) CanDebit(amount decimal.Decimal) bool {
	return w.balance.GreaterThanOrEqual(amount)
}

// Credit adds a positive amount to the balance
func (w *Wallet) Credit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if !amount.IsPositive() {
		return errs.ErrInvalidAmount
	}

	w.balance = w.balance.Add(amount)
	w.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit subtracts a positive amount from the balance.
// Returns a detailed insufficient funds error when the balance would become negative.
func (w *Wallet) Debit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if !amount.IsPositive() {
		return errs.ErrInvalidAmount
	}

	if !w.CanDebit(amount) {
		return errs.NewInsufficientFundsError(w.UserID, w.ID, FormatAmount(amount), w.FormattedBalance())
	}

	w.balance = w.balance.Sub(amount)
	w.UpdatedAt = timeProvider.Now()
	return nil
}
