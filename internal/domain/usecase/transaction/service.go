package transaction

import (
	"context"
	"time"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/persistence"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
	"github.com/kunalPisolkar24/payflow/internal/domain/usecase/txscope"
)

// Operation names used in logs and metrics
const (
	OperationDeposit  = "deposit"
	OperationWithdraw = "withdraw"
	OperationTransfer = "transfer"
)

// Service applies deposits, withdrawals and transfers.
// Each operation is exactly one storage transaction; conflicts reported by
// the storage engine are returned to the caller and never retried.
type Service struct {
	uow          persistence.UnitOfWork
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	metrics      coreport.MetricsRecorder
	logger       coreport.Logger
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	metrics coreport.MetricsRecorder,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

func (s *Service) atomic(ctx context.Context, fn func(txCtx context.Context) error) error {
	return txscope.Run(ctx, s.uow, s.logger, fn)
}

// observe records the outcome of one operation
func (s *Service) observe(operation string, start time.Time, err error) {
	s.metrics.ObserveOperation(operation, outcomeOf(err), s.timeProvider.Since(start))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return coreport.OutcomeSuccess
	case errs.IsStorageConflictError(err):
		return coreport.OutcomeConflict
	case errs.IsValidationError(err), errs.IsInsufficientFundsError(err), errs.IsNotFoundError(err):
		return coreport.OutcomeRejected
	default:
		return coreport.OutcomeError
	}
}

// fail logs a failed operation and wraps it with the request context
func (s *Service) fail(operation string, userID uint64, amount string, err error) error {
	txErr := errs.NewTransactionError(operation, userID, amount, reasonOf(err), err)

	if outcomeOf(err) == coreport.OutcomeRejected {
		s.logger.Warn("Transaction rejected", txErr.LogFields())
	} else {
		s.logger.Error("Transaction failed", txErr.LogFields())
	}

	return txErr
}

func reasonOf(err error) string {
	switch {
	case errs.IsInsufficientFundsError(err):
		return "insufficient funds"
	case errs.IsNotFoundError(err):
		return "not found"
	case errs.IsValidationError(err):
		return "validation failed"
	case errs.IsStorageConflictError(err):
		return "concurrent modification"
	default:
		return "storage failure"
	}
}

func newResult(tx *entity.Transaction, wallet *entity.Wallet) *usecase.TransactionResult {
	return &usecase.TransactionResult{
		Reference: tx.Reference,
		Type:      tx.Type,
		Amount:    tx.FormattedAmount(),
		Balance:   wallet.FormattedBalance(),
		CreatedAt: tx.CreatedAt,
	}
}
