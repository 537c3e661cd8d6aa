package transaction

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
)

// validateUserID rejects requests without an authenticated owner
func validateUserID(userID uint64) error {
	if userID == 0 {
		return fmt.Errorf("%w: user ID is required", errs.ErrInvalidRequest)
	}
	return nil
}

// recipientRef is a parsed transfer recipient: either a user ID or a normalized email
type recipientRef struct {
	userID uint64
	email  string
}

// parseRecipient accepts a numeric user ID or an email address
func parseRecipient(raw string) (recipientRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return recipientRef{}, fmt.Errorf("%w: recipient is required", errs.ErrInvalidRecipient)
	}

	if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
		if id == 0 {
			return recipientRef{}, fmt.Errorf("%w: recipient ID must be positive", errs.ErrInvalidRecipient)
		}
		return recipientRef{userID: id}, nil
	}

	email, err := entity.NormalizeEmail(raw)
	if err != nil {
		return recipientRef{}, fmt.Errorf("%w: %q is neither a user ID nor an email", errs.ErrInvalidRecipient, raw)
	}

	return recipientRef{email: email}, nil
}

func toBankDetails(bank usecase.BankDetails) *entity.BankDetails {
	return entity.NewBankDetails(bank.BankName, bank.AccountHolderName, bank.AccountNumber, bank.IFSCCode)
}
