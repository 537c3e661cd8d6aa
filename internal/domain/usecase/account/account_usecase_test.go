package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
	coremocks "github.com/kunalPisolkar24/payflow/mocks/port/core"
	persistencemocks "github.com/kunalPisolkar24/payflow/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contextKey string

const txKey contextKey = "tx"

type mocks struct {
	uow     *persistencemocks.MockUnitOfWork
	users   *persistencemocks.MockUserRepository
	wallets *persistencemocks.MockWalletRepository
	hasher  *coremocks.MockPasswordHasher
	tokens  *coremocks.MockTokenManager
	logger  *coremocks.MockLogger
}

func setup(t *testing.T) (*mocks, usecase.AccountUseCase) {
	m := &mocks{
		uow:     persistencemocks.NewMockUnitOfWork(t),
		users:   persistencemocks.NewMockUserRepository(t),
		wallets: persistencemocks.NewMockWalletRepository(t),
		hasher:  coremocks.NewMockPasswordHasher(t),
		tokens:  coremocks.NewMockTokenManager(t),
		logger:  coremocks.NewMockLogger(t),
	}

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()

	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return m, NewAccountUseCase(m.uow, m.hasher, m.tokens, clock, m.logger)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey, "mockTransaction")
	req := usecase.RegisterRequest{Name: "Asha Rao", Email: "Asha@Example.com", Password: "s3cret-pass"}

	t.Run("Creates user and wallet together", func(t *testing.T) {
		m, accounts := setup(t)

		m.hasher.EXPECT().Hash("s3cret-pass").Return("$2a$10$hash", nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.users).Once()
		m.uow.EXPECT().GetWalletRepository(txCtx).Return(m.wallets).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		m.users.EXPECT().GetByEmail(txCtx, "asha@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.users.EXPECT().Create(txCtx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) { user.ID = 9 }).
			Return(nil).Once()
		m.wallets.EXPECT().Create(txCtx, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.UserID == 9 && w.Balance().IsZero()
		})).Return(nil).Once()

		user, err := accounts.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, uint64(9), user.ID)
		assert.Equal(t, "asha@example.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	})

	t.Run("Duplicate email rolls back", func(t *testing.T) {
		m, accounts := setup(t)

		m.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.users).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
		m.users.EXPECT().GetByEmail(txCtx, "asha@example.com").Return(&entity.User{ID: 1}, nil).Once()

		user, err := accounts.Register(ctx, req)

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		assert.Nil(t, user)
	})

	t.Run("Wallet failure rolls back the user", func(t *testing.T) {
		m, accounts := setup(t)

		m.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.users).Once()
		m.uow.EXPECT().GetWalletRepository(txCtx).Return(m.wallets).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
		m.users.EXPECT().GetByEmail(txCtx, mock.Anything).Return(nil, errs.ErrUserNotFound).Once()
		m.users.EXPECT().Create(txCtx, mock.Anything).
			Run(func(_ context.Context, user *entity.User) { user.ID = 9 }).
			Return(nil).Once()
		m.wallets.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		_, err := accounts.Register(ctx, req)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Validation happens before hashing", func(t *testing.T) {
		testCases := []struct {
			description string
			req         usecase.RegisterRequest
		}{
			{"Short password", usecase.RegisterRequest{Name: "Asha", Email: "a@example.com", Password: "short"}},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, accounts := setup(t)
				_, err := accounts.Register(ctx, tc.req)
				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
			})
		}
	})

	t.Run("Invalid email", func(t *testing.T) {
		m, accounts := setup(t)
		m.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil).Once()

		_, err := accounts.Register(ctx, usecase.RegisterRequest{Name: "Asha", Email: "nope", Password: "longenough"})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: 4, Name: "Ravi", Email: "ravi@example.com", PasswordHash: "hash"}
	expiry := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Issues a session", func(t *testing.T) {
		m, accounts := setup(t)

		m.uow.EXPECT().GetUserRepository(ctx).Return(m.users).Once()
		m.users.EXPECT().GetByEmail(ctx, "ravi@example.com").Return(user, nil).Once()
		m.hasher.EXPECT().Compare("hash", "password1").Return(nil).Once()
		m.tokens.EXPECT().Issue(coreport.Identity{UserID: 4, Email: "ravi@example.com"}).Return("jwt", expiry, nil).Once()

		session, err := accounts.Authenticate(ctx, "RAVI@example.com", "password1")

		require.NoError(t, err)
		assert.Equal(t, "jwt", session.Token)
		assert.Equal(t, expiry, session.ExpiresAt)
		assert.Equal(t, user, session.User)
	})

	t.Run("Unknown email", func(t *testing.T) {
		m, accounts := setup(t)

		m.uow.EXPECT().GetUserRepository(ctx).Return(m.users).Once()
		m.users.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		_, err := accounts.Authenticate(ctx, "ghost@example.com", "password1")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		m, accounts := setup(t)

		m.uow.EXPECT().GetUserRepository(ctx).Return(m.users).Once()
		m.users.EXPECT().GetByEmail(ctx, "ravi@example.com").Return(user, nil).Once()
		m.hasher.EXPECT().Compare("hash", "wrong").Return(errors.New("mismatch")).Once()

		_, err := accounts.Authenticate(ctx, "ravi@example.com", "wrong")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Malformed input", func(t *testing.T) {
		_, accounts := setup(t)

		_, err := accounts.Authenticate(ctx, "not-an-email", "x")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

		_, err = accounts.Authenticate(ctx, "ravi@example.com", "")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestGetProfileAndRecipients(t *testing.T) {
	ctx := context.Background()

	t.Run("Profile", func(t *testing.T) {
		m, accounts := setup(t)
		m.uow.EXPECT().GetUserRepository(ctx).Return(m.users).Once()
		m.users.EXPECT().GetByID(ctx, uint64(4)).Return(&entity.User{ID: 4}, nil).Once()

		user, err := accounts.GetProfile(ctx, 4)

		require.NoError(t, err)
		assert.Equal(t, uint64(4), user.ID)
	})

	t.Run("Recipients exclude the caller", func(t *testing.T) {
		m, accounts := setup(t)
		others := []*entity.User{{ID: 1, Name: "Asha"}, {ID: 2, Name: "Ravi"}}
		m.uow.EXPECT().GetUserRepository(ctx).Return(m.users).Once()
		m.users.EXPECT().ListExcept(ctx, uint64(4)).Return(others, nil).Once()

		users, err := accounts.ListRecipients(ctx, 4)

		require.NoError(t, err)
		assert.Equal(t, others, users)
	})

	t.Run("No other users", func(t *testing.T) {
		m, accounts := setup(t)
		m.uow.EXPECT().GetUserRepository(ctx).Return(m.users).Once()
		m.users.EXPECT().ListExcept(ctx, uint64(4)).Return(nil, nil).Once()

		users, err := accounts.ListRecipients(ctx, 4)

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("Anonymous caller", func(t *testing.T) {
		_, accounts := setup(t)

		_, err := accounts.GetProfile(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		_, err = accounts.ListRecipients(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
