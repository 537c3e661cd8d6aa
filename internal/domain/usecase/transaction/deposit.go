package transaction

import (
	"context"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
)

// Deposit credits the user's wallet and appends a DEPOSIT record in the same unit
func (s *Service) Deposit(ctx context.Context, req usecase.DepositRequest) (result *usecase.TransactionResult, err error) {
	start := s.timeProvider.Now()
	defer func() { s.observe(OperationDeposit, start, err) }()

	if err := validateUserID(req.UserID); err != nil {
		return nil, s.fail(OperationDeposit, req.UserID, req.Amount, err)
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		return nil, s.fail(OperationDeposit, req.UserID, req.Amount, err)
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

		record, err = entity.NewDeposit(s.idGenerator.NewID(), req.UserID, amount, toBankDetails(req.Bank), s.timeProvider)
		if err != nil {
			return err
		}

		wallet, err = wallets.Credit(txCtx, current.ID, amount)
		if err != nil {
			return err
		}

		return s.uow.GetTransactionRepository(txCtx).Create(txCtx, record)
	})
	if err != nil {
		return nil, s.fail(OperationDeposit, req.UserID, req.Amount, err)
	}

	s.logger.Info("Deposit completed", map[string]any{
		"user_id":   req.UserID,
		"wallet_id": wallet.ID,
		"reference": record.Reference,
		"amount":    record.FormattedAmount(),
		"balance":   wallet.FormattedBalance(),
	})

	return newResult(record, wallet), nil
}
