package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
)

// Transfer moves funds from the sender's wallet to the recipient's wallet and
// appends one TRANSFER record referencing both, all in one unit
func (s *Service) Transfer(ctx context.Context, req usecase.TransferRequest) (result *usecase.TransactionResult, err error) {
	start := s.timeProvider.Now()
	defer func() { s.observe(OperationTransfer, start, err) }()

	if err := validateUserID(req.SenderUserID); err != nil {
		return nil, s.fail(OperationTransfer, req.SenderUserID, req.Amount, err)
	}

	// Self transfers are rejected before the amount is looked at
	recipient, err := s.resolveRecipient(ctx, req.Recipient)
	if err != nil {
		return nil, s.fail(OperationTransfer, req.SenderUserID, req.Amount, err)
	}
	if recipient.ID == req.SenderUserID {
		return nil, s.fail(OperationTransfer, req.SenderUserID, req.Amount,
			fmt.Errorf("%w: cannot transfer to yourself", errs.ErrInvalidRecipient))
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		return nil, s.fail(OperationTransfer, req.SenderUserID, req.Amount, err)
	}

	var (
		record *entity.Transaction
		source *entity.Wallet
	)

	err = s.atomic(ctx, func(txCtx context.Context) error {
		wallets := s.uow.GetWalletRepository(txCtx)

		from, err := wallets.GetByUserID(txCtx, req.SenderUserID)
		if err != nil {
			return err
		}

		to, err := wallets.GetByUserID(txCtx, recipient.ID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrRecipientNotFound
			}
			return err
		}

		if !from.CanDebit(amount) {
			return errs.NewInsufficientFundsError(req.SenderUserID, from.ID, entity.FormatAmount(amount), from.FormattedBalance())
		}

		record, err = entity.NewTransfer(s.idGenerator.NewID(), req.SenderUserID, from.ID, to.ID, amount, req.Description, s.timeProvider)
		if err != nil {
			return err
		}

		// Touch wallets in ID order so opposite transfers do not deadlock
		if from.ID < to.ID {
			if source, err = wallets.Debit(txCtx, from.ID, amount); err != nil {
				return err
			}
			if _, err = wallets.Credit(txCtx, to.ID, amount); err != nil {
				return err
			}
		} else {
			if _, err = wallets.Credit(txCtx, to.ID, amount); err != nil {
				return err
			}
			if source, err = wallets.Debit(txCtx, from.ID, amount); err != nil {
				return err
			}
		}

		return s.uow.GetTransactionRepository(txCtx).Create(txCtx, record)
	})
	if err != nil {
		return nil, s.fail(OperationTransfer, req.SenderUserID, req.Amount, err)
	}

	s.logger.Info("Transfer completed", map[string]any{
		"user_id":          req.SenderUserID,
		"recipient_id":     recipient.ID,
		"source_wallet_id": *record.SourceWalletID,
		"target_wallet_id": *record.TargetWalletID,
		"reference":        record.Reference,
		"amount":           record.FormattedAmount(),
		"balance":          source.FormattedBalance(),
	})

	return newResult(record, source), nil
}

// resolveRecipient looks the recipient up by ID or email
func (s *Service) resolveRecipient(ctx context.Context, raw string) (*entity.User, error) {
	ref, err := parseRecipient(raw)
	if err != nil {
		return nil, err
	}

	users := s.uow.GetUserRepository(ctx)

	var user *entity.User
	if ref.userID != 0 {
		user, err = users.GetByID(ctx, ref.userID)
	} else {
		user, err = users.GetByEmail(ctx, ref.email)
	}
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrRecipientNotFound
		}
		return nil, err
	}

	return user, nil
}
