package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/usecase"
	"github.com/kunalPisolkar24/payflow/internal/domain/usecase/account"
	"github.com/kunalPisolkar24/payflow/internal/domain/usecase/ledger"
	"github.com/kunalPisolkar24/payflow/internal/domain/usecase/transaction"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/auth"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/database"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/idgen"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/logger"
	timeProvider "github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/time"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/config"
)

// application holds what every command needs: configuration, logging and the database
type application struct {
	cfg    *config.Config
	logger coreport.Logger
	clock  coreport.TimeProvider
	db     *database.Manager
}

// useCases are the domain services wired to the database
type useCases struct {
	accounts     usecase.AccountUseCase
	ledger       usecase.LedgerUseCase
	transactions usecase.TransactionUseCase
	tokens       coreport.TokenManager
}

// bootstrap loads configuration, creates the logger and connects to the database
func bootstrap(ctx context.Context) (*application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger, cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	warnProductionConfig(cfg, appLogger)

	dbConfig, err := database.NewConfig(cfg.Database, cfg.Logger.Level)
	if err != nil {
		return nil, err
	}

	clock := timeProvider.NewRealTimeProvider()
	dbManager := database.NewManager(dbConfig, appLogger, clock)
	if _, err := dbManager.Connect(ctx); err != nil {
		_ = appLogger.Flush()
		return nil, err
	}

	return &application{
		cfg:    cfg,
		logger: appLogger,
		clock:  clock,
		db:     dbManager,
	}, nil
}

// buildUseCases wires the domain services. metrics receives wallet operation outcomes.
func (a *application) buildUseCases(metrics coreport.MetricsRecorder) (*useCases, error) {
	tokens, err := auth.NewJWTManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer, a.cfg.Auth.TokenTTL, a.clock)
	if err != nil {
		return nil, err
	}

	uow := a.db.CreateUnitOfWork()

	return &useCases{
		accounts:     account.NewAccountUseCase(uow, auth.NewBcryptHasher(a.cfg.Auth.BcryptCost), tokens, a.clock, a.logger),
		ledger:       ledger.NewLedgerUseCase(uow, a.logger),
		transactions: transaction.NewTransactionService(uow, idgen.NewULIDGenerator(a.clock), a.clock, metrics, a.logger),
		tokens:       tokens,
	}, nil
}

// close releases the database and flushes buffered log entries
func (a *application) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("Failed to close database", map[string]any{
			"error": err.Error(),
		})
	}
	_ = a.logger.Flush()
}

// warnProductionConfig logs settings that are legal but unsafe in production
func warnProductionConfig(cfg *config.Config, appLogger coreport.Logger) {
	if !cfg.IsProduction() {
		return
	}

	var warnings []string

	switch strings.ToLower(cfg.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full'")
	}

	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low")
	}

	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low")
	}

	if len(cfg.Auth.JWTSecret) < 32 {
		warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes")
	}

	if len(warnings) > 0 {
		appLogger.Warn("Potential security issues in production configuration", map[string]any{
			"warnings": warnings,
		})
	}
}
