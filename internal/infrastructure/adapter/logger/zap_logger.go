package logger

import (
	"fmt"
	"strings"

	"github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a zap-based logger from the logger configuration
func NewZapLogger(cfg config.LoggerConfig, isProduction bool) (core.Logger, error) {
	var zapCfg zap.Config

	if isProduction {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		zapCfg.Encoding = "json"
		zapCfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	case "console":
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if cfg.TimeFormat != "" {
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	} else {
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.MessageKey = "message"
	zapCfg.DisableCaller = !cfg.CallerInfo

	if cfg.Output != "" {
		zapCfg.OutputPaths = []string{cfg.Output}
	}

	zapCfg.Level = zap.NewAtomicLevelAt(toZapLevel(core.ParseLogLevel(cfg.Level)))

	// Skip the adapter frame so callers are reported correctly
	zapLogger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &ZapLogger{
		logger: zapLogger,
		level:  zapCfg.Level,
	}, nil
}

// NewZapLoggerWithCore wraps an existing zap core
func NewZapLoggerWithCore(zapCore zapcore.Core, level core.LogLevel) core.Logger {
	atomic := zap.NewAtomicLevelAt(toZapLevel(level))
	return &ZapLogger{
		logger: zap.New(zapCore),
		level:  atomic,
	}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	switch l.level.Level() {
	case zap.DebugLevel:
		return core.LogLevelDebug
	case zap.WarnLevel:
		return core.LogLevelWarn
	case zap.ErrorLevel, zap.DPanicLevel, zap.PanicLevel, zap.FatalLevel:
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// WithFields returns a child logger that adds fields to every entry
func (l *ZapLogger) WithFields(fields map[string]any) core.Logger {
	return &ZapLogger{
		logger: l.logger.With(mapToZapFields(fields)...),
		level:  l.level,
	}
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zap.DebugLevel
	case core.LogLevelWarn:
		return zap.WarnLevel
	case core.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	if !l.level.Enabled(zap.DebugLevel) {
		return
	}
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	if !l.level.Enabled(zap.InfoLevel) {
		return
	}
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	if !l.level.Enabled(zap.WarnLevel) {
		return
	}
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	if !l.level.Enabled(zap.ErrorLevel) {
		return
	}
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
