package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository implements WalletRepository interface using GORM.
// Balances are changed with single UPDATE statements so no row is read and
// written back; a debit only matches while the balance covers it.
type WalletRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *WalletRepository) modelToEntity(m *model.Wallet) (*entity.Wallet, error) {
	wallet, err := entity.RestoreWallet(m.ID, m.UserID, m.Balance, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		r.logger.Error("Stored wallet violates invariants", map[string]any{
			"wallet_id": m.ID,
			"error":     err.Error(),
		})
		return nil, err
	}
	return wallet, nil
}

func (r *WalletRepository) handleDatabaseError(operation string, err error, walletID, userID uint64) error {
	mapped := r.errorClassifier.MapError(err, errs.ErrWalletNotFound, errs.ErrDuplicateUser)
	if errs.IsNotFoundError(mapped) {
		return mapped
	}

	fields := map[string]any{
		"operation": operation,
		"wallet_id": walletID,
		"user_id":   userID,
		"error":     err.Error(),
	}
	if errs.IsStorageConflictError(mapped) {
		r.logger.Warn("Wallet update conflicted with a concurrent transaction", fields)
	} else {
		r.logger.Error("Wallet repository error", fields)
	}
	return mapped
}

// Create stores the wallet of a newly registered user
func (r *WalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.Wallet{
		UserID:    wallet.UserID,
		Balance:   wallet.Balance(),
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&walletModel).Error; err != nil {
		return r.handleDatabaseError("create", err, 0, wallet.UserID)
	}

	wallet.ID = walletModel.ID
	return nil
}

// GetByUserID retrieves the wallet owned by userID
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&walletModel).Error; err != nil {
		return nil, r.handleDatabaseError("get_by_user_id", err, 0, userID)
	}
	return r.modelToEntity(&walletModel)
}

// Credit increments the balance and returns the updated wallet
func (r *WalletRepository) Credit(ctx context.Context, walletID uint64, amount decimal.Decimal) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Model(&walletModel).
		Clauses(clause.Returning{}).
		Where("id = ?", walletID).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("credit", result.Error, walletID, 0)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrWalletNotFound
	}

	r.logger.Debug("Wallet credited", map[string]any{
		"wallet_id": walletID,
		"amount":    entity.FormatAmount(amount),
		"balance":   entity.FormatAmount(walletModel.Balance),
	})
	return r.modelToEntity(&walletModel)
}

// Debit decrements the balance only if it stays non-negative
func (r *WalletRepository) Debit(ctx context.Context, walletID uint64, amount decimal.Decimal) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Model(&walletModel).
		Clauses(clause.Returning{}).
		Where("id = ? AND balance >= ?", walletID, amount).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("debit", result.Error, walletID, 0)
	}

	if result.RowsAffected == 0 {
		return nil, r.explainFailedDebit(ctx, walletID, amount)
	}

	r.logger.Debug("Wallet debited", map[string]any{
		"wallet_id": walletID,
		"amount":    entity.FormatAmount(amount),
		"balance":   entity.FormatAmount(walletModel.Balance),
	})
	return r.modelToEntity(&walletModel)
}

// explainFailedDebit tells a missing wallet apart from a balance that is too low
func (r *WalletRepository) explainFailedDebit(ctx context.Context, walletID uint64, amount decimal.Decimal) error {
	var current model.Wallet
	err := r.db.WithContext(ctx).First(&current, walletID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrWalletNotFound
	}
	if err != nil {
		return r.handleDatabaseError("debit", err, walletID, 0)
	}

	r.logger.Warn("Debit rejected by balance guard", map[string]any{
		"wallet_id": walletID,
		"amount":    entity.FormatAmount(amount),
		"available": entity.FormatAmount(current.Balance),
	})
	return fmt.Errorf("debit of wallet %d: %w", walletID,
		errs.NewInsufficientFundsError(current.UserID, walletID, entity.FormatAmount(amount), entity.FormatAmount(current.Balance)))
}
