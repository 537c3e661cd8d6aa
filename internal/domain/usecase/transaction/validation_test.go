package transaction

import (
	"testing"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecipient(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expected      recipientRef
		expectedError error
	}{
		{name: "Numeric ID", raw: "42", expected: recipientRef{userID: 42}},
		{name: "Email is normalized", raw: "  Ravi@Example.COM ", expected: recipientRef{email: "ravi@example.com"}},
		{name: "Empty", raw: "", expectedError: errs.ErrInvalidRecipient},
		{name: "Zero ID", raw: "0", expectedError: errs.ErrInvalidRecipient},
		{name: "Negative ID", raw: "-3", expectedError: errs.ErrInvalidRecipient},
		{name: "Garbage", raw: "ravi at example", expectedError: errs.ErrInvalidRecipient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := parseRecipient(tt.raw)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ref)
		})
	}
}

func TestValidateUserID(t *testing.T) {
	assert.NoError(t, validateUserID(1))
	assert.ErrorIs(t, validateUserID(0), errs.ErrInvalidRequest)
}

func TestToBankDetails(t *testing.T) {
	assert.Nil(t, toBankDetails(usecase.BankDetails{}))

	bank := toBankDetails(usecase.BankDetails{BankName: "SBI", AccountNumber: "1234567890"})
	require.NotNil(t, bank)
	assert.Equal(t, "****7890", bank.AccountNumber)
}
