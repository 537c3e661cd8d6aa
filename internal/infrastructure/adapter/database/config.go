package database

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/kunalPisolkar24/payflow/internal/infrastructure/config"
)

// Config represents database configuration
type Config struct {
	Driver             string
	Host               string
	Port               int
	Username           string
	Password           string
	Database           string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	QueryTimeout       time.Duration
	LogLevel           string
	SlowQueryThreshold time.Duration
	RetryAttempts      int
	RetryDelay         time.Duration
}

// NewConfig builds the database configuration from the application config
func NewConfig(cfg config.DatabaseConfig, logLevel string) (*Config, error) {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid database port %q: %w", cfg.Port, err)
	}

	c := &Config{
		Driver:             cfg.Driver,
		Host:               cfg.Host,
		Port:               port,
		Username:           cfg.Username,
		Password:           cfg.Password,
		Database:           cfg.Database,
		SSLMode:            cfg.SSLMode,
		MaxOpenConns:       cfg.MaxOpenConns,
		MaxIdleConns:       cfg.MaxIdleConns,
		ConnMaxLifetime:    cfg.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.ConnMaxIdleTime,
		QueryTimeout:       cfg.QueryTimeout,
		LogLevel:           logLevel,
		SlowQueryThreshold: cfg.SlowQueryThreshold,
		RetryAttempts:      cfg.RetryAttempts,
		RetryDelay:         cfg.RetryDelay,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}
	if c.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}

	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// Address returns host:port for logging
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
