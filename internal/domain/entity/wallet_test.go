package entity

import (
	"testing"
	"time"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coremocks "github.com/kunalPisolkar24/payflow/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNewWallet(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid wallet creation", func(t *testing.T) {
		wallet, err := NewWallet(42, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), wallet.UserID)
		assert.True(t, wallet.Balance().IsZero())
		assert.Equal(t, "0.00", wallet.FormattedBalance())
		assert.Equal(t, fixedTime, wallet.CreatedAt)
		assert.Equal(t, fixedTime, wallet.UpdatedAt)
	})

	t.Run("Missing owner", func(t *testing.T) {
		wallet, err := NewWallet(0, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, wallet)
	})
}

func TestRestoreWallet(t *testing.T) {
	now := time.Now()

	wallet, err := RestoreWallet(3, 7, dec(t, "70.5"), now, now)
	require.NoError(t, err)
	assert.Equal(t, "70.50", wallet.FormattedBalance())

	_, err = RestoreWallet(3, 7, dec(t, "-1"), now, now)
	assert.Error(t, err)
}

func TestWalletCreditDebit(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Deposit then withdraw the same amount restores the balance", func(t *testing.T) {
		wallet, err := RestoreWallet(1, 1, dec(t, "12.34"), fixedTime, fixedTime)
		require.NoError(t, err)

		require.NoError(t, wallet.Credit(dec(t, "100.00"), mockTime))
		assert.Equal(t, "112.34", wallet.FormattedBalance())

		require.NoError(t, wallet.Debit(dec(t, "100.00"), mockTime))
		assert.Equal(t, "12.34", wallet.FormattedBalance())
	})

	t.Run("Example scenario", func(t *testing.T) {
		wallet, err := NewWallet(1, mockTime)
		require.NoError(t, err)

		require.NoError(t, wallet.Credit(dec(t, "100.00"), mockTime))
		require.NoError(t, wallet.Debit(dec(t, "30.00"), mockTime))
		assert.Equal(t, "70.00", wallet.FormattedBalance())
	})

	t.Run("Debit more than balance fails and leaves balance unchanged", func(t *testing.T) {
		wallet, err := RestoreWallet(9, 4, dec(t, "40.00"), fixedTime, fixedTime)
		require.NoError(t, err)

		err = wallet.Debit(dec(t, "60.00"), mockTime)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		var detailed *errs.InsufficientFundsError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, uint64(9), detailed.WalletID)
		assert.Equal(t, "60.00", detailed.Amount)
		assert.Equal(t, "40.00", detailed.Available)
		assert.Equal(t, "40.00", wallet.FormattedBalance())
	})

	t.Run("Debit of the whole balance reaches zero", func(t *testing.T) {
		wallet, err := RestoreWallet(9, 4, dec(t, "40.00"), fixedTime, fixedTime)
		require.NoError(t, err)

		require.NoError(t, wallet.Debit(dec(t, "40.00"), mockTime))
		assert.True(t, wallet.Balance().IsZero())
	})

	t.Run("Non-positive amounts are rejected", func(t *testing.T) {
		wallet, err := NewWallet(1, mockTime)
		require.NoError(t, err)

		assert.ErrorIs(t, wallet.Credit(decimal.Zero, mockTime), errs.ErrInvalidAmount)
		assert.ErrorIs(t, wallet.Credit(dec(t, "-5"), mockTime), errs.ErrInvalidAmount)
		assert.ErrorIs(t, wallet.Debit(dec(t, "-5"), mockTime), errs.ErrInvalidAmount)
		assert.True(t, wallet.Balance().IsZero())
	})
}
