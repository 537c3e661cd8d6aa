package entity

import (
	"strings"
	"time"
)

// SelfLabel names the viewer in sender/recipient columns of the history
const SelfLabel = "You"

// Directions of a history entry from the viewer's point of view
const (
	DirectionCredit = "credit"
	DirectionDebit  = "debit"
)

// TransactionView is a ledger record as shown in one user's history
type TransactionView struct {
	ID            string
	Type          string
	Amount        string
	Direction     string
	Description   string
	Timestamp     time.Time
	Status        string
	BankName      string
	AccountNumber string
	SenderName    string
	RecipientName string
}

// NewTransactionView projects a ledger record for the viewer owning viewerWalletID.
// ownerNames maps wallet IDs to the names of their owners and is used to label the counterparty.
func NewTransactionView(tx *Transaction, viewerWalletID uint64, ownerNames map[uint64]string) TransactionView {
	view := TransactionView{
		ID:          tx.Reference,
		Type:        strings.ToLower(string(tx.Type)),
		Amount:      tx.FormattedAmount(),
		Description: tx.Description,
		Timestamp:   tx.CreatedAt,
		Status:      string(tx.Status),
	}

	switch tx.Type {
	case TypeDeposit:
		view.Direction = DirectionCredit
	case TypeWithdraw:
		view.Direction = DirectionDebit
	case TypeTransfer:
		switch {
		case tx.SentFrom(viewerWalletID):
			view.Direction = DirectionDebit
			view.SenderName = SelfLabel
			view.RecipientName = ownerNames[*tx.TargetWalletID]
		case tx.SentTo(viewerWalletID):
			view.Direction = DirectionCredit
			view.SenderName = ownerNames[*tx.SourceWalletID]
			view.RecipientName = SelfLabel
		}
	}

	// BankDetails holds the account number masked already
	if tx.Bank != nil {
		view.BankName = strings.ToUpper(tx.Bank.BankName)
		view.AccountNumber = tx.Bank.AccountNumber
	}

	return view
}
