package account

import (
	"context"
	"errors"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/persistence"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
	"github.com/kunalPisolkar24/payflow/internal/domain/usecase/txscope"
)

// AccountUseCase implements registration, login and user lookups
type AccountUseCase struct {
	uow          persistence.UnitOfWork
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenManager
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountUseCase creates a new account use case instance
func NewAccountUseCase(
	uow persistence.UnitOfWork,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenManager,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AccountUseCase {
	return &AccountUseCase{
		uow:          uow,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates the user and its empty wallet in one storage transaction
func (a *AccountUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	if err := entity.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		a.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	user, err := entity.NewUser(req.Name, req.Email, hash, a.timeProvider)
	if err != nil {
		return nil, err
	}

	err = txscope.Run(ctx, a.uow, a.logger, func(txCtx context.Context) error {
		users := a.uow.GetUserRepository(txCtx)

		if _, err := users.GetByEmail(txCtx, user.Email); err == nil {
			return errs.ErrDuplicateUser
		} else if !errors.Is(err, errs.ErrNotFound) {
			return err
		}

		if err := users.Create(txCtx, user); err != nil {
			return err
		}

		wallet, err := entity.NewWallet(user.ID, a.timeProvider)
		if err != nil {
			return err
		}

		return a.uow.GetWalletRepository(txCtx).Create(txCtx, wallet)
	})
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateUser) {
			a.logger.Warn("Registration with existing email", map[string]any{
				"email": user.Email,
			})
		} else {
			a.logger.Error("Failed to register user", map[string]any{
				"email": user.Email,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	a.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
	})

	return user, nil
}

// Authenticate checks the credentials and issues a session token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (a *AccountUseCase) Authenticate(ctx context.Context, email, password string) (*usecase.Session, error) {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := a.uow.GetUserRepository(ctx).GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		a.logger.Warn("Failed login attempt", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.Issue(coreport.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		a.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, err
	}

	a.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return &usecase.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// GetProfile returns the user with the given ID
func (a *AccountUseCase) GetProfile(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthorized
	}
	return a.uow.GetUserRepository(ctx).GetByID(ctx, userID)
}

// ListRecipients returns every other registered user
func (a *AccountUseCase) ListRecipients(ctx context.Context, userID uint64) ([]*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthorized
	}

	users, err := a.uow.GetUserRepository(ctx).ListExcept(ctx, userID)
	if err != nil {
		a.logger.Error("Failed to list recipients", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if users == nil {
		users = []*entity.User{}
	}
	return users, nil
}
