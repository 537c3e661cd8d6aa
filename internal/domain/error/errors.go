package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds  = 4001
	CodeInvalidAmount      = 4002
	CodeInvalidRecipient   = 4003
	CodeInvalidRequest     = 4004
	CodeDuplicateUser      = 4005
	CodeInvalidCredentials = 4010
	CodeUnauthorized       = 4011
	CodeNotFound           = 4040
	CodeStorageConflict    = 4090
	CodeRateLimited        = 4290

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is non-numeric, zero, negative or has more than two decimals
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotFound is returned when a user, wallet or other resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = fmt.Errorf("user: %w", ErrNotFound)

	// ErrWalletNotFound is returned when the user has no wallet
	ErrWalletNotFound = fmt.Errorf("wallet: %w", ErrNotFound)

	// ErrRecipientNotFound is returned when a transfer recipient cannot be resolved
	ErrRecipientNotFound = fmt.Errorf("recipient: %w", ErrNotFound)

	// ErrInsufficientFunds is returned when a withdrawal or transfer exceeds the balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidRecipient is returned when a transfer recipient is missing or is the sender
	ErrInvalidRecipient = errors.New("invalid recipient")

	// ErrStorageConflict is returned when the atomic unit failed because of a concurrent modification
	ErrStorageConflict = errors.New("storage conflict: concurrent modification")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidTransaction is returned when a ledger record violates its invariants
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrDuplicateUser is returned when registering an email that is already taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when the session token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited is returned when a client exceeded its request window
	ErrRateLimited = errors.New("too many requests")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRecipient):
		return CodeInvalidRecipient
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidTransaction):
		return CodeInvalidRequest
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrStorageConflict):
		return CodeStorageConflict
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for insufficient funds
type InsufficientFundsError struct {
	UserID    uint64
	WalletID  uint64
	Amount    string
	Available string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in wallet %d of user %d: required %s, available %s",
		e.WalletID, e.UserID, e.Amount, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"wallet_id":  e.WalletID,
		"amount":     e.Amount,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID, walletID uint64, amount, available string) error {
	return &InsufficientFundsError{
		UserID:    userID,
		WalletID:  walletID,
		Amount:    amount,
		Available: available,
	}
}

// TransactionError represents a failed deposit, withdrawal or transfer
type TransactionError struct {
	Operation string
	UserID    uint64
	Amount    string
	Reason    string
	Err       error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s failed for user %d (amount: %s): %s: %v",
		e.Operation, e.UserID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "transaction_error",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}

	var detailed interface{ LogFields() map[string]any }
	if errors.As(e.Err, &detailed) {
		for k, v := range detailed.LogFields() {
			if _, exists := fields[k]; !exists {
				fields[k] = v
			}
		}
	}

	return fields
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(operation string, userID uint64, amount, reason string, err error) *TransactionError {
	return &TransactionError{
		Operation: operation,
		UserID:    userID,
		Amount:    amount,
		Reason:    reason,
		Err:       err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsStorageConflictError checks if the error was caused by a concurrent modification
func IsStorageConflictError(err error) bool {
	return errors.Is(err, ErrStorageConflict)
}

// IsValidationError reports whether the error is caused by caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidRecipient) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidTransaction)
}
