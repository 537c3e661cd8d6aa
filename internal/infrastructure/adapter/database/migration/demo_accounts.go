package migration

import (
	"context"
	"errors"

	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
)

// DemoAccount is a seeded user with an opening balance
type DemoAccount struct {
	Name           string
	Email          string
	Password       string
	OpeningBalance string
}

// DemoAccounts are created by `migrate --seed` for local development
var DemoAccounts = []DemoAccount{
	{Name: "Asha Rao", Email: "asha@payflow.dev", Password: "password123", OpeningBalance: "1000.00"},
	{Name: "Ravi Kumar", Email: "ravi@payflow.dev", Password: "password123", OpeningBalance: "500.00"},
	{Name: "Meera Iyer", Email: "meera@payflow.dev", Password: "password123", OpeningBalance: "250.00"},
}

// SeedDemoAccounts registers the demo accounts through the regular use cases.
// Accounts that already exist are left untouched.
func SeedDemoAccounts(
	ctx context.Context,
	accounts usecase.AccountUseCase,
	transactions usecase.TransactionUseCase,
	logger coreport.Logger,
) error {
	for _, demo := range DemoAccounts {
		user, err := accounts.Register(ctx, usecase.RegisterRequest{
			Name:     demo.Name,
			Email:    demo.Email,
			Password: demo.Password,
		})
		if errors.Is(err, errs.ErrDuplicateUser) {
			logger.Info("Demo account already exists", map[string]any{
				"email": demo.Email,
			})
			continue
		}
		if err != nil {
			return err
		}

		if _, err := transactions.Deposit(ctx, usecase.DepositRequest{
			UserID: user.ID,
			Amount: demo.OpeningBalance,
			Bank:   usecase.BankDetails{BankName: "PAYFLOW DEMO", AccountHolderName: demo.Name},
		}); err != nil {
			return err
		}
	}

	logger.Info("Demo accounts created or verified", map[string]any{
		"count": len(DemoAccounts),
	})
	return nil
}
