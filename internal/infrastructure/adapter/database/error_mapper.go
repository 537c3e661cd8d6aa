package database

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps errors raised while beginning or committing a transaction to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a transaction-level database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Already a domain error from a repository inside the unit
	if errors.Is(err, errs.ErrStorageConflict) || errors.Is(err, errs.ErrDatabaseConnection) {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s interrupted: %v", errs.ErrDatabaseConnection, operation, err)
	}

	switch m.classifier.Classify(err) {
	case repository.ConflictError:
		return fmt.Errorf("%w: %s: %v", errs.ErrStorageConflict, operation, err)
	case repository.ConnectionError:
		return fmt.Errorf("%w: %s: %v", errs.ErrDatabaseConnection, operation, err)
	default:
		return fmt.Errorf("%w: %s: %v", errs.ErrInternalServer, operation, err)
	}
}
