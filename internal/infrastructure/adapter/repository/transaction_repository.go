package repository

import (
	"context"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements the append-only ledger using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func entityToModel(tx *entity.Transaction) model.Transaction {
	m := model.Transaction{
		Reference:      tx.Reference,
		Type:           string(tx.Type),
		Amount:         tx.Amount,
		Status:         string(tx.Status),
		UserID:         tx.UserID,
		SourceWalletID: tx.SourceWalletID,
		TargetWalletID: tx.TargetWalletID,
		Description:    tx.Description,
		CreatedAt:      tx.CreatedAt,
	}

	if tx.Bank != nil {
		m.BankName = tx.Bank.BankName
		m.AccountHolderName = tx.Bank.AccountHolderName
		m.AccountNumber = tx.Bank.AccountNumber
		m.IFSCCode = tx.Bank.IFSCCode
	}

	return m
}

// modelToEntity converts a ledger row to an entity
func modelToEntity(m *model.Transaction) *entity.Transaction {
	tx := &entity.Transaction{
		ID:             m.ID,
		Reference:      m.Reference,
		Type:           entity.TransactionType(m.Type),
		Amount:         m.Amount,
		Status:         entity.TransactionStatus(m.Status),
		UserID:         m.UserID,
		SourceWalletID: m.SourceWalletID,
		TargetWalletID: m.TargetWalletID,
		Description:    m.Description,
		CreatedAt:      m.CreatedAt,
	}

	bank := &entity.BankDetails{
		BankName:          m.BankName,
		AccountHolderName: m.AccountHolderName,
		AccountNumber:     m.AccountNumber,
		IFSCCode:          m.IFSCCode,
	}
	if !bank.IsEmpty() {
		tx.Bank = bank
	}

	return tx
}

// Create appends a ledger record and sets its ID
func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	txModel := entityToModel(tx)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&txModel).Error; err != nil {
		mapped := r.errorClassifier.MapError(err, errs.ErrNotFound, errs.ErrInvalidTransaction)
		r.logger.Error("Failed to append ledger record", map[string]any{
			"reference": tx.Reference,
			"user_id":   tx.UserID,
			"type":      tx.Type,
			"error":     err.Error(),
		})
		return mapped
	}

	tx.ID = txModel.ID
	r.logger.Debug("Ledger record appended", map[string]any{
		"reference": tx.Reference,
		"id":        tx.ID,
		"type":      tx.Type,
	})
	return nil
}

// ListForUser returns the user's deposits and withdrawals plus the transfers
// touching walletID, newest first
func (r *TransactionRepository) ListForUser(ctx context.Context, userID, walletID uint64) ([]*entity.Transaction, error) {
	var txModels []model.Transaction
	err := r.db.WithContext(ctx).
		Where("(type IN ? AND user_id = ?) OR (type = ? AND (source_wallet_id = ? OR target_wallet_id = ?))",
			[]string{string(entity.TypeDeposit), string(entity.TypeWithdraw)}, userID,
			string(entity.TypeTransfer), walletID, walletID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&txModels).Error
	if err != nil {
		r.logger.Error("Failed to list ledger records", map[string]any{
			"user_id":   userID,
			"wallet_id": walletID,
			"error":     err.Error(),
		})
		return nil, r.errorClassifier.MapError(err, errs.ErrNotFound, errs.ErrInvalidTransaction)
	}

	records := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		records = append(records, modelToEntity(&txModels[i]))
	}
	return records, nil
}
