package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment variable read by the loader
const EnvPrefix = "PF"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps environment variables to config keys. Variables take
// precedence over the config file.
var envOverrides = map[string]string{
	"PF_SERVER_HOST":                  "server.host",
	"PF_SERVER_PORT":                  "server.port",
	"PF_DB_HOST":                      "database.host",
	"PF_DB_PORT":                      "database.port",
	"PF_DB_USERNAME":                  "database.username",
	"PF_DB_PASSWORD":                  "database.password",
	"PF_DB_NAME":                      "database.database",
	"PF_DB_SSL_MODE":                  "database.sslMode",
	"PF_DB_MAX_OPEN_CONNS":            "database.maxOpenConns",
	"PF_DB_MAX_IDLE_CONNS":            "database.maxIdleConns",
	"PF_DB_QUERY_TIMEOUT_SECONDS":     "database.queryTimeout",
	"PF_DB_RETRY_ATTEMPTS":            "database.retryAttempts",
	"PF_LOGGER_LEVEL":                 "logger.level",
	"PF_LOGGER_FORMAT":                "logger.format",
	"PF_JWT_SECRET":                   "auth.jwtSecret",
	"PF_JWT_TTL_MINUTES":              "auth.tokenTTL",
	"PF_BCRYPT_COST":                  "auth.bcryptCost",
	"PF_RATE_LIMIT_ENABLED":           "rateLimit.enabled",
	"PF_RATE_LIMIT_LIMIT":             "rateLimit.limit",
	"PF_RATE_LIMIT_WINDOW_SECONDS":    "rateLimit.window",
	"PF_REDIS_ADDR":                   "rateLimit.redis.addr",
	"PF_REDIS_PASSWORD":               "rateLimit.redis.password",
	"PF_REDIS_DB":                     "rateLimit.redis.db",
	"PF_METRICS_ENABLED":              "metrics.enabled",
	"PF_SERVER_ALLOWED_ORIGINS":       "server.allowedOrigins",
	"PF_SERVER_TRUSTED_PROXIES":       "server.trustedProxies",
	"PF_DB_SLOW_QUERY_THRESHOLD_MS":   "database.slowQueryThreshold",
	"PF_DB_CONN_MAX_LIFETIME_MINUTES": "database.connMaxLifetime",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	return LoadFrom(getEnvironment(), ConfigPaths...)
}

// LoadFrom reads <env>.yaml from the first of paths that has it, applies
// PF_ overrides and validates the result
func LoadFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.trustedProxies", []string{})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30)      // minutes
	v.SetDefault("database.connMaxIdleTime", 15)      // minutes
	v.SetDefault("database.queryTimeout", 5)          // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)            // seconds
	v.SetDefault("database.slowQueryThreshold", 200)  // milliseconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.issuer", "payflow")
	v.SetDefault("auth.tokenTTL", 60) // minutes
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.limit", 10)
	v.SetDefault("rateLimit.window", 60) // seconds
	v.SetDefault("rateLimit.keyPrefix", "payflow:ratelimit")
	v.SetDefault("rateLimit.redis.addr", "localhost:6379")
	v.SetDefault("rateLimit.redis.db", 0)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment from PF_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv("PF_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides copies set PF_ variables onto their config keys
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envOverrides {
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			continue
		}
		if key == "server.allowedOrigins" || key == "server.trustedProxies" {
			v.Set(key, strings.Split(value, ","))
			continue
		}
		// Numeric values stay numeric so duration fields decode as plain counts
		if n, err := strconv.Atoi(value); err == nil {
			v.Set(key, n)
			continue
		}
		v.Set(key, value)
	}
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
	config.Database.SlowQueryThreshold = config.Database.SlowQueryThreshold * time.Millisecond

	config.Auth.TokenTTL = config.Auth.TokenTTL * time.Minute
	config.RateLimit.Window = config.RateLimit.Window * time.Second
}

// validateConfig reports every required setting that is missing
func validateConfig(config *Config) error {
	var missing []string

	required := map[string]string{
		"database.host":     config.Database.Host,
		"database.username": config.Database.Username,
		"database.password": config.Database.Password,
		"database.database": config.Database.Database,
		"auth.jwtSecret":    config.Auth.JWTSecret,
	}
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}

	if config.RateLimit.Enabled && config.RateLimit.Redis.Addr == "" {
		missing = append(missing, "rateLimit.redis.addr")
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.RateLimit.Enabled && (config.RateLimit.Limit <= 0 || config.RateLimit.Window <= 0) {
		return errors.New("rate limit and window must be positive")
	}
	if config.Auth.TokenTTL <= 0 {
		return errors.New("auth token TTL must be positive")
	}

	return nil
}
