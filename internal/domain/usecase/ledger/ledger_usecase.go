package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/persistence"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
)

// LedgerUseCase assembles balances and transaction histories
type LedgerUseCase struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewLedgerUseCase creates a new ledger use case instance
func NewLedgerUseCase(uow persistence.UnitOfWork, logger coreport.Logger) usecase.LedgerUseCase {
	return &LedgerUseCase{
		uow:    uow,
		logger: logger,
	}
}

// GetBalance returns the formatted balance of the user's wallet
func (l *LedgerUseCase) GetBalance(ctx context.Context, userID uint64) (*usecase.BalanceView, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user ID is required", errs.ErrInvalidRequest)
	}

	wallet, err := l.uow.GetWalletRepository(ctx).GetByUserID(ctx, userID)
	if err != nil {
		l.logger.Error("Failed to get wallet", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &usecase.BalanceView{
		UserID:   userID,
		WalletID: wallet.ID,
		Balance:  wallet.FormattedBalance(),
	}, nil
}

// ListTransactions returns the user's deposits and withdrawals plus every transfer
// in or out of the user's wallet, newest first
func (l *LedgerUseCase) ListTransactions(ctx context.Context, userID uint64) ([]entity.TransactionView, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user ID is required", errs.ErrInvalidRequest)
	}

	wallet, err := l.uow.GetWalletRepository(ctx).GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := l.uow.GetTransactionRepository(ctx).ListForUser(ctx, userID, wallet.ID)
	if err != nil {
		l.logger.Error("Failed to list transactions", map[string]any{
			"user_id":   userID,
			"wallet_id": wallet.ID,
			"error":     err.Error(),
		})
		return nil, err
	}

	names := map[uint64]string{}
	if counterparts := counterpartWallets(records, wallet.ID); len(counterparts) > 0 {
		names, err = l.uow.GetUserRepository(ctx).NamesByWalletIDs(ctx, counterparts)
		if err != nil {
			return nil, err
		}
	}

	views := make([]entity.TransactionView, 0, len(records))
	for _, record := range records {
		views = append(views, entity.NewTransactionView(record, wallet.ID, names))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Timestamp.After(views[j].Timestamp)
	})

	l.logger.Debug("Transactions listed", map[string]any{
		"user_id": userID,
		"count":   len(views),
	})

	return views, nil
}

// counterpartWallets collects the other side of every transfer touching walletID
func counterpartWallets(records []*entity.Transaction, walletID uint64) []uint64 {
	seen := map[uint64]struct{}{}
	var ids []uint64

	for _, record := range records {
		if !record.IsTransfer() {
			continue
		}

		var other uint64
		switch {
		case record.SentFrom(walletID):
			other = *record.TargetWalletID
		case record.SentTo(walletID):
			other = *record.SourceWalletID
		default:
			continue
		}

		if _, ok := seen[other]; !ok {
			seen[other] = struct{}{}
			ids = append(ids, other)
		}
	}

	return ids
}
