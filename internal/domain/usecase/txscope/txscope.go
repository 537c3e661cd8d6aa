package txscope

import (
	"context"
	"fmt"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/persistence"
)

// Run executes fn inside one storage transaction.
// The transaction is committed when fn returns nil and rolled back otherwise,
// so a failed operation never leaves a partial effect behind.
func Run(ctx context.Context, uow persistence.UnitOfWork, logger coreport.Logger, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(txCtx, uow, logger)
			panic(p)
		}
	}()

	if err = fn(txCtx); err != nil {
		rollback(txCtx, uow, logger)
		return err
	}

	if err = uow.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func rollback(txCtx context.Context, uow persistence.UnitOfWork, logger coreport.Logger) {
	if err := uow.Rollback(txCtx); err != nil {
		logger.Error("Failed to roll back transaction", map[string]any{
			"error": err.Error(),
		})
	}
}
