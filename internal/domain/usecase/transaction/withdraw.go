package transaction

import (
	"context"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
)

// Withdraw debits the user's wallet and appends a WITHDRAW record in the same unit.
// The balance never becomes negative: the storage debit is guarded by the balance itself.
func (s *Service) Withdraw(ctx context.Context, req usecase.WithdrawRequest) (result *usecase.TransactionResult, err error) {
	start := s.timeProvider.Now()
	defer func() { s.observe(OperationWithdraw, start, err) }()

	if err := validateUserID(req.UserID); err != nil {
		return nil, s.fail(OperationWithdraw, req.UserID, req.Amount, err)
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		return nil, s.fail(OperationWithdraw, req.UserID, req.Amount, err)
	}

	var (
		record *entity.Transaction
		wallet *entity.Wallet
	)

	err = s.atomic(ctx, func(txCtx context.Context) error {
		wallets := s.uow.GetWalletRepository(txCtx)

		current, err := wallets.GetByUserID(txCtx, req.UserID)
		if err != nil {
			return err
		}

		if !current.CanDebit(amount) {
			return errs.NewInsufficientFundsError(req.UserID, current.ID, entity.FormatAmount(amount), current.FormattedBalance())
		}

		record, err = entity.NewWithdrawal(s.idGenerator.NewID(), req.UserID, amount, toBankDetails(req.Bank), s.timeProvider)
		if err != nil {
			return err
		}

		wallet, err = wallets.Debit(txCtx, current.ID, amount)
		if err != nil {
			return err
		}

		return s.uow.GetTransactionRepository(txCtx).Create(txCtx, record)
	})
	if err != nil {
		return nil, s.fail(OperationWithdraw, req.UserID, req.Amount, err)
	}

	s.logger.Info("Withdrawal completed", map[string]any{
		"user_id":   req.UserID,
		"wallet_id": wallet.ID,
		"reference": record.Reference,
		"amount":    record.FormattedAmount(),
		"balance":   wallet.FormattedBalance(),
	})

	return newResult(record, wallet), nil
}
