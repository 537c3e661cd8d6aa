package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/dto"
)

// errorResponse maps a domain error to its status code and public message
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrInvalidAmount):
		return http.StatusBadRequest, "Invalid amount"
	case errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusBadRequest, "Insufficient funds"
	case errors.Is(err, errs.ErrInvalidRecipient):
		return http.StatusBadRequest, "Invalid recipient"
	case errors.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest, requestMessage(err)
	case errors.Is(err, errs.ErrInvalidTransaction):
		return http.StatusBadRequest, "Invalid transaction"
	case errors.Is(err, errs.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, errs.ErrRecipientNotFound):
		return http.StatusNotFound, "Recipient not found"
	case errors.Is(err, errs.ErrWalletNotFound):
		return http.StatusNotFound, "Wallet not found"
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, errs.ErrDuplicateUser):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, errs.ErrStorageConflict):
		return http.StatusConflict, "The wallet was modified concurrently, please retry"
	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many requests, please try again later"
	case errors.Is(err, errs.ErrDatabaseConnection):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// requestMessage exposes validation detail, which never carries internal state
func requestMessage(err error) string {
	var txErr *errs.TransactionError
	if errors.As(err, &txErr) {
		err = txErr.Err
	}

	detail := strings.TrimPrefix(err.Error(), errs.ErrInvalidRequest.Error())
	detail = strings.TrimPrefix(detail, ": ")
	if detail == "" {
		return "Invalid request"
	}
	return "Invalid request: " + detail
}

// respondError writes the error response. Server-side failures are logged here;
// rejected operations were already logged by the use case.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status, message := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":  c.FullPath(),
			"error": err.Error(),
		})
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// respondBindError writes a 400 for a body that could not be decoded or validated
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
