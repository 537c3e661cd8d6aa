package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	timeprovider "github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/time"
)

// TestDBManager connects integration tests to the database named by the TEST_DB_* variables
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a new test database manager
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:          "postgres",
		Host:            getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:            getEnvIntOrDefault("TEST_DB_PORT", 5432),
		Username:        getEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("TEST_DB_DATABASE", "payflow_test"),
		SSLMode:         getEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1, // fail fast
		RetryDelay:      time.Second,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// ConnectOrSkip connects to the test database and skips the test when it is unreachable
func (m *TestDBManager) ConnectOrSkip(t *testing.T) {
	t.Helper()

	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration test")
	}

	if _, err := m.Manager.Connect(context.Background()); err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})
}

// SetupTestDB drops every table and runs the full migration
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()

	if err := db.Exec(`
		DROP FUNCTION IF EXISTS reject_ledger_mutation() CASCADE;
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error; err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	if err := m.Manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
