// Package config provides configuration loading and validation for boardd.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store drivers.
const (
	DriverREST   = "rest"
	DriverSQLite = "sqlite"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Store     StoreConfig     `koanf:"store"`
	Session   SessionConfig   `koanf:"session"`
	Workflow  WorkflowConfig  `koanf:"workflow"`
	Engine    EngineConfig    `koanf:"engine"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// RequestTimeout bounds a single API request, including ?wait=true
	// waits on a pending write. It must stay below WriteTimeout.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the hosted REST store client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	APIKey         string               `koanf:"api_key"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
// MaxAttempts defaults to 1: writes are not retried unless an operator opts
// in.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting. A zero rate disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver string `koanf:"driver"`
	// Path is the SQLite database file; ":memory:" keeps it in memory.
	Path string `koanf:"path"`
}

// SessionConfig holds access token verification and the optional
// cross-instance session relay.
type SessionConfig struct {
	// JWTSecret verifies HS256 tokens. Ignored when JWKSURL is set.
	JWTSecret string `koanf:"jwt_secret"`
	// JWKSURL points at a JSON Web Key Set for RS256 tokens.
	JWKSURL  string        `koanf:"jwks_url"`
	Audience string        `koanf:"audience"`
	Issuer   string        `koanf:"issuer"`
	Leeway   time.Duration `koanf:"leeway"`
	Redis    RedisConfig   `koanf:"redis"`
}

// RedisConfig configures the session relay.
type RedisConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	Channel  string `koanf:"channel"`
}

// WorkflowConfig lists the stages every board moves tasks through, in order.
type WorkflowConfig struct {
	Stages []string `koanf:"stages"`
}

// EngineConfig tunes the board engine.
type EngineConfig struct {
	ReloadWorkers  int `koanf:"reload_workers"`
	FailureBacklog int `koanf:"failure_backlog"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
