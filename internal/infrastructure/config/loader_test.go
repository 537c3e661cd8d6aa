package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
database:
  host: db.internal
  username: payflow
  password: secret
  database: payflow
auth:
  jwtSecret: s3cret
rateLimit:
  redis:
    addr: redis:6379
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadFrom(t *testing.T) {
	t.Run("Applies defaults and converts durations", func(t *testing.T) {
		dir := writeConfig(t, Test, minimalConfig)

		cfg, err := LoadFrom(Test, dir)

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
		assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, 10, cfg.Auth.BcryptCost)
		assert.Equal(t, 10, cfg.RateLimit.Limit)
		assert.Equal(t, time.Minute, cfg.RateLimit.Window)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Empty(t, cfg.Server.TrustedProxies)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("Environment variables override the file", func(t *testing.T) {
		dir := writeConfig(t, Test, minimalConfig)
		t.Setenv("PF_DB_HOST", "override.internal")
		t.Setenv("PF_RATE_LIMIT_LIMIT", "3")
		t.Setenv("PF_DB_QUERY_TIMEOUT_SECONDS", "9")
		t.Setenv("PF_SERVER_ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("PF_SERVER_TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.4")

		cfg, err := LoadFrom(Test, dir)

		require.NoError(t, err)
		assert.Equal(t, "override.internal", cfg.Database.Host)
		assert.Equal(t, 3, cfg.RateLimit.Limit)
		assert.Equal(t, 9*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.4"}, cfg.Server.TrustedProxies)
	})

	t.Run("Lists every missing required key", func(t *testing.T) {
		dir := writeConfig(t, Test, "server:\n  port: 9000\n")

		cfg, err := LoadFrom(Test, dir)

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "auth.jwtSecret")
		assert.Contains(t, err.Error(), "database.host")
		assert.Contains(t, err.Error(), "database.password")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFrom(Production, t.TempDir())
		assert.Error(t, err)
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("PF_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("PF_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())
}
