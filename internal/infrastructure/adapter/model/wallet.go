package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet represents the database model for wallets, one per user
type Wallet struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UserID    uint64          `gorm:"uniqueIndex;not null"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
