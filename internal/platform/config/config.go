// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Mongo     MongoConfig     `koanf:"mongo"`
	Store     StoreConfig     `koanf:"store"`
	Health    HealthConfig    `koanf:"health"`
	Users     UsersConfig     `koanf:"users"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	DrainTimeout   time.Duration `koanf:"drain_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MongoConfig holds the replica set connection settings. When URI is set it
// is applied first and the remaining fields override what it specifies.
type MongoConfig struct {
	URI                    string        `koanf:"uri"`
	Seeds                  []string      `koanf:"seeds"`
	ReplicaSet             string        `koanf:"replica_set"`
	Database               string        `koanf:"database"`
	ReadPreference         string        `koanf:"read_preference"`
	ServerSelectionTimeout time.Duration `koanf:"server_selection_timeout"`
	Timeout                time.Duration `koanf:"timeout"`
	MaxPoolSize            int           `koanf:"max_pool_size"`
	MinPoolSize            int           `koanf:"min_pool_size"`
	AppName                string        `koanf:"app_name"`
	ConnectRetry           RetryConfig   `koanf:"connect_retry"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// StoreConfig holds the guards applied to every repository operation.
type StoreConfig struct {
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. A zero RequestsPerSecond
// disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// HealthConfig holds settings for the replica set health and info reports.
type HealthConfig struct {
	Timeout      time.Duration `koanf:"timeout"`
	CountWorkers int           `koanf:"count_workers"`
}

// UsersConfig holds user account settings.
type UsersConfig struct {
	PasswordCost int `koanf:"password_cost"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
