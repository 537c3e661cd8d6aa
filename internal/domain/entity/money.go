package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmount bounds a single operation so balances always fit a NUMERIC(20,2) column
var MaxAmount = decimal.New(1, 15)

// ParseAmount validates a caller supplied amount.
// The amount must be a finite decimal greater than zero with at most two
// fractional digits ("10", "10.5", "10.50" are valid; "0", "-5", "1.234", "abc" are not).
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, amount)
	}

	return ValidateAmount(value)
}

// ValidateAmount applies the same rules as ParseAmount to an already decoded value
func ValidateAmount(value decimal.Decimal) (decimal.Decimal, error) {
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}

	if !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	if value.GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: amount exceeds %s", errs.ErrInvalidAmount, MaxAmount.String())
	}

	return value.Truncate(MaxDecimalPlaces), nil
}

// FormatAmount renders an amount with exactly two decimal places, e.g. 10.5 -> "10.50"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// maskPrefix replaces every hidden character of a masked account number
const maskPrefix = "****"

// MaskAccountNumber keeps only the last four characters of an account number.
// A value that is already masked is returned unchanged.
func MaskAccountNumber(accountNumber string) string {
	accountNumber = strings.ReplaceAll(strings.TrimSpace(accountNumber), " ", "")
	if accountNumber == "" {
		return ""
	}
	if strings.HasPrefix(accountNumber, maskPrefix) {
		return accountNumber
	}

	if utf8.RuneCountInString(accountNumber) <= 4 {
		return maskPrefix + accountNumber
	}

	runes := []rune(accountNumber)
	return maskPrefix + string(runes[len(runes)-4:])
}
