package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Auth        AuthConfig      `mapstructure:"auth"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
	Metrics     MetricsConfig   `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`

	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding
	// headers are honoured. Empty means the peer address is always used.
	TrustedProxies []string `mapstructure:"trustedProxies"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver             string        `mapstructure:"driver"`
	Host               string        `mapstructure:"host"`
	Port               string        `mapstructure:"port"`
	Username           string        `mapstructure:"username"`
	Password           string        `mapstructure:"password"`
	Database           string        `mapstructure:"database"`
	SSLMode            string        `mapstructure:"sslMode"`
	MaxOpenConns       int           `mapstructure:"maxOpenConns"`
	MaxIdleConns       int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime    time.Duration `mapstructure:"connMaxLifetime"`    // minutes
	ConnMaxIdleTime    time.Duration `mapstructure:"connMaxIdleTime"`    // minutes
	QueryTimeout       time.Duration `mapstructure:"queryTimeout"`       // seconds
	RetryAttempts      int           `mapstructure:"retryAttempts"`
	RetryDelay         time.Duration `mapstructure:"retryDelay"`         // seconds
	SlowQueryThreshold time.Duration `mapstructure:"slowQueryThreshold"` // milliseconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains session token and password hashing settings
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwtSecret"`
	Issuer     string        `mapstructure:"issuer"`
	TokenTTL   time.Duration `mapstructure:"tokenTTL"` // minutes
	BcryptCost int           `mapstructure:"bcryptCost"`
}

// RateLimitConfig contains the fixed window limiter settings
type RateLimitConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Limit     int           `mapstructure:"limit"`
	Window    time.Duration `mapstructure:"window"` // seconds
	KeyPrefix string        `mapstructure:"keyPrefix"`
	Redis     RedisConfig   `mapstructure:"redis"`
}

// RedisConfig contains the redis connection used by the rate limiter
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MetricsConfig contains prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// IsProduction reports whether the application runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
