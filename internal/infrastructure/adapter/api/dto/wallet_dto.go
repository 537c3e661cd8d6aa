package dto

import "time"

// BalanceResponse represents the API response for the caller's balance
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// BankTransactionRequest is the body of a deposit or withdrawal
type BankTransactionRequest struct {
	Amount            Amount `json:"amount"`
	Bank              string `json:"bank" binding:"max=100"`
	AccountHolderName string `json:"accountHolderName" binding:"max=100"`
	AccountNumber     string `json:"accountNumber" binding:"max=34"`
	IFSCCode          string `json:"ifscCode" binding:"max=20"`
}

// TransferRequest is the body of a transfer. Recipient is an email or a numeric user ID.
type TransferRequest struct {
	Recipient   string `json:"recipient"`
	Amount      Amount `json:"amount"`
	Description string `json:"description" binding:"max=255"`
}

// TransactionEnvelope carries any of the three operations, selected by Type
type TransactionEnvelope struct {
	Type              string `json:"type" binding:"required"`
	Amount            Amount `json:"amount"`
	Bank              string `json:"bank" binding:"max=100"`
	AccountHolderName string `json:"accountHolderName" binding:"max=100"`
	AccountNumber     string `json:"accountNumber" binding:"max=34"`
	IFSCCode          string `json:"ifscCode" binding:"max=20"`
	Recipient         string `json:"recipient"`
	Description       string `json:"description" binding:"max=255"`
}

// TransactionResponse describes an accepted operation
type TransactionResponse struct {
	Message   string    `json:"message"`
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Balance   string    `json:"balance"`
	Timestamp time.Time `json:"timestamp"`
}

// TransactionHistoryItem is one entry of GET /api/transactions.
// Fields that do not apply to the entry are null.
type TransactionHistoryItem struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Direction     string    `json:"direction"`
	Description   *string   `json:"description"`
	Timestamp     time.Time `json:"timestamp"`
	Status        string    `json:"status"`
	BankName      *string   `json:"bankName"`
	AccountNumber *string   `json:"accountNumber"`
	SenderName    *string   `json:"senderName"`
	RecipientName *string   `json:"recipientName"`
}

// Nullable returns nil for an empty string
func Nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
