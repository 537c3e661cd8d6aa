package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler serves the caller's transaction history
type TransactionHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
		logger: logger,
	}
}

// ListTransactions handles GET /api/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	views, err := h.ledger.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]dto.TransactionHistoryItem, 0, len(views))
	for _, view := range views {
		items = append(items, dto.TransactionHistoryItem{
			ID:            view.ID,
			Type:          view.Type,
			Amount:        view.Amount,
			Direction:     view.Direction,
			Description:   dto.Nullable(view.Description),
			Timestamp:     view.Timestamp,
			Status:        view.Status,
			BankName:      dto.Nullable(view.BankName),
			AccountNumber: dto.Nullable(view.AccountNumber),
			SenderName:    dto.Nullable(view.SenderName),
			RecipientName: dto.Nullable(view.RecipientName),
		})
	}

	c.JSON(http.StatusOK, items)
}
