package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"Invalid amount", fmt.Errorf("%w: too many decimals", errs.ErrInvalidAmount), http.StatusBadRequest, "Invalid amount"},
		{"Insufficient funds", &errs.InsufficientFundsError{Amount: "10.00", Available: "5.00"}, http.StatusBadRequest, "Insufficient funds"},
		{"Invalid recipient", errs.ErrInvalidRecipient, http.StatusBadRequest, "Invalid recipient"},
		{"Invalid request with detail", fmt.Errorf("%w: invalid email address", errs.ErrInvalidRequest), http.StatusBadRequest, "Invalid request: invalid email address"},
		{"Bare invalid request", errs.ErrInvalidRequest, http.StatusBadRequest, "Invalid request"},
		{"Invalid transaction", fmt.Errorf("%w: pq detail", errs.ErrInvalidTransaction), http.StatusBadRequest, "Invalid transaction"},
		{"Bad credentials", errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"Unauthorized", errs.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"Recipient not found", errs.ErrRecipientNotFound, http.StatusNotFound, "Recipient not found"},
		{"Wallet not found", errs.ErrWalletNotFound, http.StatusNotFound, "Wallet not found"},
		{"User not found", errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"Duplicate user", errs.ErrDuplicateUser, http.StatusConflict, "User already exists"},
		{"Storage conflict", errs.ErrStorageConflict, http.StatusConflict, "The wallet was modified concurrently, please retry"},
		{"Rate limited", errs.ErrRateLimited, http.StatusTooManyRequests, "Too many requests, please try again later"},
		{"Database down", errs.ErrDatabaseConnection, http.StatusServiceUnavailable, "Service temporarily unavailable"},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := errorResponse(tc.err)
			assert.Equal(t, tc.expectedStatus, status)
			assert.Equal(t, tc.expectedMessage, message)
		})
	}
}
