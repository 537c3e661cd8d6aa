package txscope

import (
	"context"
	"errors"
	"testing"

	coremocks "github.com/kunalPisolkar24/payflow/mocks/port/core"
	persistencemocks "github.com/kunalPisolkar24/payflow/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contextKey string

const txKey contextKey = "tx"

func TestRun(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey, "mockTransaction")

	t.Run("Commits when fn succeeds", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUow.EXPECT().Commit(txCtx).Return(nil).Once()

		called := false
		err := Run(ctx, mockUow, mockLogger, func(got context.Context) error {
			called = true
			assert.Equal(t, txCtx, got)
			return nil
		})

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("Rolls back when fn fails", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockLogger := coremocks.NewMockLogger(t)

		fnErr := errors.New("boom")
		mockUow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := Run(ctx, mockUow, mockLogger, func(context.Context) error { return fnErr })

		assert.ErrorIs(t, err, fnErr)
	})

	t.Run("Rollback failure is logged and the original error returned", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockLogger := coremocks.NewMockLogger(t)

		fnErr := errors.New("boom")
		mockUow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(errors.New("connection reset")).Once()
		mockLogger.EXPECT().Error("Failed to roll back transaction", mock.Anything).Once()

		err := Run(ctx, mockUow, mockLogger, func(context.Context) error { return fnErr })

		assert.ErrorIs(t, err, fnErr)
	})

	t.Run("Begin failure skips fn", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockLogger := coremocks.NewMockLogger(t)

		beginErr := errors.New("pool exhausted")
		mockUow.EXPECT().Begin(ctx).Return(nil, beginErr).Once()

		err := Run(ctx, mockUow, mockLogger, func(context.Context) error {
			t.Fatal("fn must not run")
			return nil
		})

		assert.ErrorIs(t, err, beginErr)
	})

	t.Run("Commit failure is returned", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockLogger := coremocks.NewMockLogger(t)

		commitErr := errors.New("could not serialize access")
		mockUow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUow.EXPECT().Commit(txCtx).Return(commitErr).Once()

		err := Run(ctx, mockUow, mockLogger, func(context.Context) error { return nil })

		assert.ErrorIs(t, err, commitErr)
	})

	t.Run("Panics roll back and propagate", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		mockUow.EXPECT().Rollback(txCtx).Return(nil).Once()

		assert.Panics(t, func() {
			_ = Run(ctx, mockUow, mockLogger, func(context.Context) error { panic("bug") })
		})
	})
}
