package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/dto"
	usecasemocks "github.com/kunalPisolkar24/payflow/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupWalletHandler(t *testing.T) (http.Handler, *usecasemocks.MockTransactionUseCase, *usecasemocks.MockLedgerUseCase) {
	transactions := usecasemocks.NewMockTransactionUseCase(t)
	ledger := usecasemocks.NewMockLedgerUseCase(t)
	h := NewWalletHandler(transactions, ledger, testLogger())

	router, api := newAuthedRouter(t)
	api.GET("/wallet/balance", h.GetBalance)
	api.POST("/wallet/deposit", h.Deposit)
	api.POST("/wallet/withdraw", h.Withdraw)
	api.POST("/wallet/transfer", h.Transfer)
	api.POST("/wallet/transaction", h.Transaction)

	return router, transactions, ledger
}

func decodeError(t *testing.T, body []byte) dto.ErrorResponse {
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestWalletHandler_GetBalance(t *testing.T) {
	t.Run("Returns the caller's balance", func(t *testing.T) {
		router, _, ledger := setupWalletHandler(t)
		ledger.EXPECT().GetBalance(mock.Anything, uint64(1)).
			Return(&usecase.BalanceView{UserID: 1, WalletID: 7, Balance: "120.50"}, nil)

		w := performRequest(router, http.MethodGet, "/api/wallet/balance", "", testToken)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"balance":"120.50"}`, w.Body.String())
	})

	t.Run("Missing token", func(t *testing.T) {
		router, _, _ := setupWalletHandler(t)

		w := performRequest(router, http.MethodGet, "/api/wallet/balance", "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, errs.CodeUnauthorized, decodeError(t, w.Body.Bytes()).Code)
	})

	t.Run("Wallet not found", func(t *testing.T) {
		router, _, ledger := setupWalletHandler(t)
		ledger.EXPECT().GetBalance(mock.Anything, uint64(1)).Return(nil, errs.ErrWalletNotFound)

		w := performRequest(router, http.MethodGet, "/api/wallet/balance", "", testToken)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Wallet not found", decodeError(t, w.Body.Bytes()).Message)
	})
}

func TestWalletHandler_Deposit(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Successful deposit", func(t *testing.T) {
		router, transactions, _ := setupWalletHandler(t)
		transactions.EXPECT().Deposit(mock.Anything, usecase.DepositRequest{
			UserID: 1,
			Amount: "100.50",
			Bank: usecase.BankDetails{
				BankName:          "HDFC",
				AccountHolderName: "Asha",
				AccountNumber:     "001234567890",
				IFSCCode:          "HDFC0001",
			},
		}).Return(&usecase.TransactionResult{
			Reference: "01J0A",
			Type:      entity.TypeDeposit,
			Amount:    "100.50",
			Balance:   "220.50",
			CreatedAt: createdAt,
		}, nil)

		body := `{"amount": 100.50, "bank": "HDFC", "accountHolderName": "Asha", "accountNumber": "001234567890", "ifscCode": "HDFC0001"}`
		w := performRequest(router, http.MethodPost, "/api/wallet/deposit", body, testToken)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Transaction successful", resp.Message)
		assert.Equal(t, "01J0A", resp.ID)
		assert.Equal(t, "deposit", resp.Type)
		assert.Equal(t, "100.50", resp.Amount)
		assert.Equal(t, "220.50", resp.Balance)
		assert.True(t, createdAt.Equal(resp.Timestamp))
	})

	t.Run("Invalid amount", func(t *testing.T) {
		router, transactions, _ := setupWalletHandler(t)
		transactions.EXPECT().Deposit(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: must be positive", errs.ErrInvalidAmount))

		w := performRequest(router, http.MethodPost, "/api/wallet/deposit", `{"amount": "-5"}`, testToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w.Body.Bytes())
		assert.Equal(t, errs.CodeInvalidAmount, resp.Code)
		assert.Equal(t, "Invalid amount", resp.Message)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router, _, _ := setupWalletHandler(t)

		w := performRequest(router, http.MethodPost, "/api/wallet/deposit", `{"amount": true}`, testToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, w.Body.Bytes()).Code)
	})
}

func TestWalletHandler_Withdraw(t *testing.T) {
	t.Run("Insufficient funds", func(t *testing.T) {
		router, transactions, _ := setupWalletHandler(t)
		transactions.EXPECT().Withdraw(mock.Anything, mock.MatchedBy(func(req usecase.WithdrawRequest) bool {
			return req.UserID == 1 && req.Amount == "500"
		})).Return(nil, &errs.InsufficientFundsError{UserID: 1, Amount: "500.00", Available: "20.00"})

		w := performRequest(router, http.MethodPost, "/api/wallet/withdraw", `{"amount": "500"}`, testToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w.Body.Bytes())
		assert.Equal(t, errs.CodeInsufficientFunds, resp.Code)
		assert.Equal(t, "Insufficient funds", resp.Message)
	})
}

func TestWalletHandler_Transfer(t *testing.T) {
	t.Run("Sender comes from the token", func(t *testing.T) {
		router, transactions, _ := setupWalletHandler(t)
		transactions.EXPECT().Transfer(mock.Anything, usecase.TransferRequest{
			SenderUserID: 1,
			Recipient:    "ravi@payflow.dev",
			Amount:       "20",
			Description:  "rent",
		}).Return(&usecase.TransactionResult{
			Reference: "01J0C",
			Type:      entity.TypeTransfer,
			Amount:    "20.00",
			Balance:   "80.00",
		}, nil)

		body := `{"recipient": "ravi@payflow.dev", "amount": "20", "description": "rent"}`
		w := performRequest(router, http.MethodPost, "/api/wallet/transfer", body, testToken)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "transfer", resp.Type)
		assert.Equal(t, "80.00", resp.Balance)
	})

	t.Run("Recipient not found", func(t *testing.T) {
		router, transactions, _ := setupWalletHandler(t)
		transactions.EXPECT().Transfer(mock.Anything, mock.Anything).Return(nil, errs.ErrRecipientNotFound)

		w := performRequest(router, http.MethodPost, "/api/wallet/transfer", `{"recipient": "nobody@payflow.dev", "amount": "1"}`, testToken)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Recipient not found", decodeError(t, w.Body.Bytes()).Message)
	})
}

func TestWalletHandler_Transaction(t *testing.T) {
	t.Run("Dispatches a withdrawal", func(t *testing.T) {
		router, transactions, _ := setupWalletHandler(t)
		transactions.EXPECT().Withdraw(mock.Anything, mock.MatchedBy(func(req usecase.WithdrawRequest) bool {
			return req.UserID == 1 && req.Amount == "30" && req.Bank.BankName == "SBI"
		})).Return(&usecase.TransactionResult{Reference: "01J0B", Type: entity.TypeWithdraw, Amount: "30.00", Balance: "70.00"}, nil)

		w := performRequest(router, http.MethodPost, "/api/wallet/transaction", `{"type": "WITHDRAW", "amount": 30, "bank": "SBI"}`, testToken)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "withdraw", resp.Type)
	})

	t.Run("Dispatches a transfer", func(t *testing.T) {
		router, transactions, _ := setupWalletHandler(t)
		transactions.EXPECT().Transfer(mock.Anything, mock.MatchedBy(func(req usecase.TransferRequest) bool {
			return req.SenderUserID == 1 && req.Recipient == "2"
		})).Return(&usecase.TransactionResult{Reference: "01J0C", Type: entity.TypeTransfer, Amount: "5.00", Balance: "95.00"}, nil)

		w := performRequest(router, http.MethodPost, "/api/wallet/transaction", `{"type": "transfer", "amount": "5", "recipient": "2"}`, testToken)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown type", func(t *testing.T) {
		router, _, _ := setupWalletHandler(t)

		w := performRequest(router, http.MethodPost, "/api/wallet/transaction", `{"type": "refund", "amount": "5"}`, testToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, w.Body.Bytes()).Code)
	})

	t.Run("Missing type", func(t *testing.T) {
		router, _, _ := setupWalletHandler(t)

		w := performRequest(router, http.MethodPost, "/api/wallet/transaction", `{"amount": "5"}`, testToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
