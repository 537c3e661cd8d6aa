package database

import (
	"context"
	"strings"
	"time"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/requestid"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a custom GORM logger that uses our core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a GORM logger writing through the core logger.
// A zero slowThreshold disables slow query warnings.
func NewDatabaseLogger(
	coreLogger coreport.Logger,
	timeProvider coreport.TimeProvider,
	level string,
	slowThreshold time.Duration,
) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      parseGormLevel(level),
		slowThreshold: slowThreshold,
		timeProvider:  timeProvider,
	}
}

func parseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn", "warning":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, l.baseFields(ctx))
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, l.baseFields(ctx))
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, l.baseFields(ctx))
	}
}

// Trace logs SQL operations
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.timeProvider.Since(begin)
	sql, rows := fc()

	fields := l.baseFields(ctx)
	fields["elapsed_ms"] = float64(elapsed.Microseconds()) / 1000
	fields["rows"] = rows
	fields["sql"] = sql

	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if tableName := extractTableName(sql); tableName != "" {
		fields["table"] = tableName
	}

	switch {
	case err != nil && l.logLevel >= logger.Error && !isExpectedError(err):
		fields["error"] = err.Error()
		l.coreLogger.Error("SQL Error", fields)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		// Regular queries go to debug to keep info logs readable
		l.coreLogger.Debug("SQL Query", fields)
	}
}

func (l *DatabaseLogger) baseFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if id := requestid.FromContext(ctx); id != "" {
		fields["request_id"] = id
	}
	return fields
}

// isExpectedError filters errors that repositories translate into domain outcomes
func isExpectedError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "record not found")
}

// extractQueryType determines the type of SQL query (SELECT, INSERT, UPDATE, DELETE)
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))

	for _, kind := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sqlUpper, kind) {
			return kind
		}
	}
	return ""
}

// extractTableName returns the first table named after FROM, INTO or UPDATE.
// Joins and subqueries are not resolved.
func extractTableName(sql string) string {
	sql = strings.TrimSpace(sql)
	sqlUpper := strings.ToUpper(sql)

	var start int
	switch {
	case strings.HasPrefix(sqlUpper, "UPDATE "):
		start = len("UPDATE ")
	case strings.Contains(sqlUpper, " INTO "):
		start = strings.Index(sqlUpper, " INTO ") + len(" INTO ")
	case strings.Contains(sqlUpper, " FROM "):
		start = strings.Index(sqlUpper, " FROM ") + len(" FROM ")
	default:
		return ""
	}

	remainder := strings.TrimSpace(sql[start:])
	if end := strings.IndexAny(remainder, " (\n\t"); end != -1 {
		remainder = remainder[:end]
	}
	return strings.Trim(remainder, `"`)
}
