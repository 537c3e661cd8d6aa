package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/dto"
)

const transactionSuccessful = "Transaction successful"

// WalletHandler handles balance queries and monetary operations of the caller's wallet
type WalletHandler struct {
	transactions usecase.TransactionUseCase
	ledger       usecase.LedgerUseCase
	logger       coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(
	transactions usecase.TransactionUseCase,
	ledger usecase.LedgerUseCase,
	logger coreport.Logger,
) *WalletHandler {
	return &WalletHandler{
		transactions: transactions,
		ledger:       ledger,
		logger:       logger,
	}
}

// GetBalance handles GET /api/wallet/balance
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	balance, err := h.ledger.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance.Balance})
}

// Deposit handles POST /api/wallet/deposit
func (h *WalletHandler) Deposit(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.BankTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	h.deposit(c, userID, req.Amount, bankDetails(req.Bank, req.AccountHolderName, req.AccountNumber, req.IFSCCode))
}

// Withdraw handles POST /api/wallet/withdraw
func (h *WalletHandler) Withdraw(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.BankTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	h.withdraw(c, userID, req.Amount, bankDetails(req.Bank, req.AccountHolderName, req.AccountNumber, req.IFSCCode))
}

// Transfer handles POST /api/wallet/transfer. The sender is always the caller.
func (h *WalletHandler) Transfer(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	h.transfer(c, userID, req.Recipient, req.Amount, req.Description)
}

// Transaction handles POST /api/wallet/transaction, dispatching on the envelope type
func (h *WalletHandler) Transaction(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.TransactionEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txType, err := entity.ParseTransactionType(req.Type)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	bank := bankDetails(req.Bank, req.AccountHolderName, req.AccountNumber, req.IFSCCode)
	switch txType {
	case entity.TypeDeposit:
		h.deposit(c, userID, req.Amount, bank)
	case entity.TypeWithdraw:
		h.withdraw(c, userID, req.Amount, bank)
	case entity.TypeTransfer:
		h.transfer(c, userID, req.Recipient, req.Amount, req.Description)
	}
}

func (h *WalletHandler) deposit(c *gin.Context, userID uint64, amount dto.Amount, bank usecase.BankDetails) {
	result, err := h.transactions.Deposit(c.Request.Context(), usecase.DepositRequest{
		UserID: userID,
		Amount: amount.String(),
		Bank:   bank,
	})
	h.respond(c, result, err)
}

func (h *WalletHandler) withdraw(c *gin.Context, userID uint64, amount dto.Amount, bank usecase.BankDetails) {
	result, err := h.transactions.Withdraw(c.Request.Context(), usecase.WithdrawRequest{
		UserID: userID,
		Amount: amount.String(),
		Bank:   bank,
	})
	h.respond(c, result, err)
}

func (h *WalletHandler) transfer(c *gin.Context, userID uint64, recipient string, amount dto.Amount, description string) {
	result, err := h.transactions.Transfer(c.Request.Context(), usecase.TransferRequest{
		SenderUserID: userID,
		Recipient:    recipient,
		Amount:       amount.String(),
		Description:  description,
	})
	h.respond(c, result, err)
}

func (h *WalletHandler) respond(c *gin.Context, result *usecase.TransactionResult, err error) {
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionResponse{
		Message:   transactionSuccessful,
		ID:        result.Reference,
		Type:      strings.ToLower(string(result.Type)),
		Amount:    result.Amount,
		Balance:   result.Balance,
		Timestamp: result.CreatedAt,
	})
}

func bankDetails(bank, holder, number, ifsc string) usecase.BankDetails {
	return usecase.BankDetails{
		BankName:          bank,
		AccountHolderName: holder,
		AccountNumber:     number,
		IFSCCode:          ifsc,
	}
}
