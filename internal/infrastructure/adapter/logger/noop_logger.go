package logger

import (
	"github.com/kunalPisolkar24/payflow/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but doesn't do anything.
// Used by tests and benchmarks.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel sets the minimum log level to output
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

// WithFields returns the same logger
func (l *NoopLogger) WithFields(map[string]any) core.Logger {
	return l
}

// Debug logs debug messages
func (l *NoopLogger) Debug(string, map[string]any) {}

// Info logs informational messages
func (l *NoopLogger) Info(string, map[string]any) {}

// Warn logs warning messages
func (l *NoopLogger) Warn(string, map[string]any) {}

// Error logs errors messages
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush ensures all buffered logs are written to their destination
func (l *NoopLogger) Flush() error {
	return nil
}
