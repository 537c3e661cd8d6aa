package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/persistence"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/database/migration"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// poolMonitorInterval is how often the connection pool is sampled
const poolMonitorInterval = 30 * time.Second

// errNotConnected is returned by operations that need Connect first
var errNotConnected = errors.New("database not connected")

// Manager owns the database handle and everything bound to it
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the connection pool, retrying up to RetryAttempts times
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver":  m.config.Driver,
		"address": m.config.Address(),
		"name":    m.config.Database,
	})

	var (
		err    error
		gormDB *gorm.DB
	)

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      m.config.RetryAttempts,
				"delay":   m.config.RetryDelay.String(),
			})

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(m.config.RetryDelay):
			}
		}

		gormDB, err = m.open(ctx)
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	m.db = gormDB

	sqlDB, err := m.SQLDB()
	if err != nil {
		return nil, err
	}
	m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger)
	m.connectionMonitor.Start(poolMonitorInterval)

	m.logger.Info("Successfully connected to database", map[string]any{
		"address":        m.config.Address(),
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	return m.db, nil
}

// open creates the gorm handle, configures the pool and verifies connectivity
func (m *Manager) open(ctx context.Context) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowQueryThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now().UTC()
		},
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return gormDB, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// SQLDB returns the underlying connection pool
func (m *Manager) SQLDB() (*sql.DB, error) {
	if m.db == nil {
		return nil, errNotConnected
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB, nil
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.SQLDB()
	if err != nil {
		return err
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close stops the pool monitor and closes the connection pool
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	sqlDB, err := m.SQLDB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	if m.db == nil {
		return errNotConnected
	}
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}
