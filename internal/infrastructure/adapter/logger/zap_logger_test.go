package logger

import (
	"testing"

	"github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Levels(t *testing.T) {
	zapCore, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerWithCore(zapCore, core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("shown", map[string]any{"user_id": uint64(7)})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "shown", entry.Message)
	assert.Equal(t, uint64(7), entry.ContextMap()["user_id"])

	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	log.Warn("suppressed", nil)
	log.Error("kept", nil)

	assert.Equal(t, 1, logs.FilterMessage("kept").Len())
	assert.Equal(t, 0, logs.FilterMessage("suppressed").Len())
}

func TestZapLogger_WithFields(t *testing.T) {
	zapCore, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerWithCore(zapCore, core.LogLevelDebug)

	child := log.WithFields(map[string]any{"request_id": "abc"})
	child.Info("child entry", map[string]any{"path": "/api/wallet/balance"})
	log.Info("parent entry", nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["request_id"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "request_id")
}

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger(config.LoggerConfig{Level: "warn", Format: "json", Output: "stderr"}, true)

	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelDebug)

	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	assert.Same(t, log, log.WithFields(map[string]any{"a": 1}))
	assert.NoError(t, log.Flush())
}
