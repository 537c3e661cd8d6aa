package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ConflictError     ErrorType = "conflict"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	OutOfRangeError   ErrorType = "out_of_range"
	NotFoundError     ErrorType = "not_found"
	UnknownError      ErrorType = "unknown"
)

// PostgreSQL SQLSTATE codes the classifier distinguishes
const (
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeForeignKeyViolation  = "23503"
	codeNotNullViolation     = "23502"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeNumericOutOfRange    = "22003"
	codeAdminShutdown        = "57P01"
	codeCannotConnectNow     = "57P03"
	classConnectionException = "08"
)

// ErrorClassifier classifies driver errors by SQLSTATE code. Errors that carry
// no code (wrapped or produced by another driver) fall back to message matching.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError
	}

	if code, ok := sqlState(err); ok {
		return classifyCode(code)
	}

	switch {
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsConflictError(err):
		return ConflictError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsOutOfRangeError(err):
		return OutOfRangeError
	case c.IsConnectionError(err):
		return ConnectionError
	default:
		return UnknownError
	}
}

func classifyCode(code string) ErrorType {
	switch {
	case code == codeUniqueViolation:
		return DuplicateKeyError
	case code == codeSerializationFailure, code == codeDeadlockDetected, code == codeLockNotAvailable:
		return ConflictError
	case code == codeCheckViolation, code == codeForeignKeyViolation, code == codeNotNullViolation:
		return ConstraintError
	case code == codeNumericOutOfRange:
		return OutOfRangeError
	case code == codeAdminShutdown, code == codeCannotConnectNow, strings.HasPrefix(code, classConnectionException):
		return ConnectionError
	default:
		return UnknownError
	}
}

// sqlState extracts the SQLSTATE of a server error
func sqlState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code != "" {
		return pgErr.Code, true
	}
	return "", false
}

// IsDuplicateKeyError checks if the error is a unique violation (23505)
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if code, ok := sqlState(err); ok {
		return code == codeUniqueViolation
	}
	return matches(err, "sqlstate 23505", "duplicate key value")
}

// IsConflictError checks if the storage engine aborted the transaction because
// of a concurrent modification: serialization failure (40001) or deadlock (40P01)
func (c *ErrorClassifier) IsConflictError(err error) bool {
	if code, ok := sqlState(err); ok {
		return classifyCode(code) == ConflictError
	}
	return matches(err, "sqlstate 40001", "sqlstate 40p01", "sqlstate 55p03",
		"could not serialize access", "deadlock detected")
}

// IsConstraintError checks if the error is a check, foreign key or not null violation
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if code, ok := sqlState(err); ok {
		return classifyCode(code) == ConstraintError
	}
	return matches(err, "sqlstate 23514", "sqlstate 23503", "sqlstate 23502",
		"violates check constraint", "violates foreign key constraint", "violates not-null constraint")
}

// IsOutOfRangeError checks if a value did not fit its column (22003)
func (c *ErrorClassifier) IsOutOfRangeError(err error) bool {
	if code, ok := sqlState(err); ok {
		return code == codeNumericOutOfRange
	}
	return matches(err, "sqlstate 22003", "numeric field overflow")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := sqlState(err); ok {
		return classifyCode(code) == ConnectionError
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	return matches(err, "connection refused", "connection reset by peer", "broken pipe",
		"server closed the connection", "conn closed", "failed to connect")
}

// MapError converts a driver error to a domain error.
// notFound is returned for missing rows and duplicate for unique violations.
func (c *ErrorClassifier) MapError(err, notFound, duplicate error) error {
	switch c.Classify(err) {
	case "":
		return nil
	case NotFoundError:
		return notFound
	case DuplicateKeyError:
		return duplicate
	case ConflictError:
		return fmt.Errorf("%w: %s", errs.ErrStorageConflict, err.Error())
	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrInvalidTransaction, err.Error())
	case OutOfRangeError:
		return fmt.Errorf("%w: resulting value out of range: %s", errs.ErrInvalidAmount, err.Error())
	case ConnectionError:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
}

func matches(err error, needles ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, needle := range needles {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
