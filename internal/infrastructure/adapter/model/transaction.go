package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger records.
// Rows are inserted once and never updated.
type Transaction struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Reference string          `gorm:"uniqueIndex;not null;size:26"`
	Type      string          `gorm:"not null;size:20"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Status    string          `gorm:"not null;size:20"`
	UserID    uint64          `gorm:"not null;index"`

	// Bank metadata for deposits and withdrawals; the account number is stored masked
	BankName          string `gorm:"size:100"`
	AccountHolderName string `gorm:"size:100"`
	AccountNumber     string `gorm:"size:20"`
	IFSCCode          string `gorm:"size:20"`

	// Wallet references for transfers
	SourceWalletID *uint64 `gorm:"index"`
	TargetWalletID *uint64 `gorm:"index"`
	Description    string  `gorm:"size:255"`

	CreatedAt time.Time `gorm:"not null;index"`

	// Define relationships
	User         User    `gorm:"foreignKey:UserID;references:ID"`
	SourceWallet *Wallet `gorm:"foreignKey:SourceWalletID;references:ID"`
	TargetWallet *Wallet `gorm:"foreignKey:TargetWalletID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
