package config

import (
	"errors"
	"fmt"
	"strings"
)

// maxPasswordCost mirrors bcrypt.MaxCost without importing the hashing package.
const maxPasswordCost = 31

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Mongo.validate(),
		c.Store.validate(),
		c.Health.validate(),
		c.Users.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (m *MongoConfig) validate() error {
	var errs []error

	if m.URI == "" && len(m.Seeds) == 0 {
		errs = append(errs, errors.New("mongo.uri or mongo.seeds must be set"))
	}
	for i, seed := range m.Seeds {
		if strings.TrimSpace(seed) == "" {
			errs = append(errs, fmt.Errorf("mongo.seeds[%d] must not be empty", i))
		}
	}
	if m.Database == "" {
		errs = append(errs, errors.New("mongo.database must not be empty"))
	}
	switch m.ReadPreference {
	case "primary", "primaryPreferred", "secondary", "secondaryPreferred", "nearest":
		// Valid modes.
	default:
		errs = append(errs, fmt.Errorf(
			"mongo.read_preference must be one of: primary, primaryPreferred, secondary, "+
				"secondaryPreferred, nearest; got %q", m.ReadPreference))
	}
	if m.ServerSelectionTimeout <= 0 {
		errs = append(errs, errors.New("mongo.server_selection_timeout must be positive"))
	}
	if m.Timeout <= 0 {
		errs = append(errs, errors.New("mongo.timeout must be positive"))
	}
	if m.MinPoolSize < 0 || m.MaxPoolSize < 0 {
		errs = append(errs, errors.New("mongo pool sizes must not be negative"))
	}
	if m.MaxPoolSize > 0 && m.MinPoolSize > m.MaxPoolSize {
		errs = append(errs, fmt.Errorf("mongo.min_pool_size (%d) must not exceed mongo.max_pool_size (%d)",
			m.MinPoolSize, m.MaxPoolSize))
	}
	if m.ConnectRetry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("mongo.connect_retry.max_attempts must be >= 1, got %d",
			m.ConnectRetry.MaxAttempts))
	}
	if m.ConnectRetry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("mongo.connect_retry.multiplier must be positive, got %f",
			m.ConnectRetry.Multiplier))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	if s.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.circuit_breaker.max_failures must be >= 1, got %d",
			s.CircuitBreaker.MaxFailures))
	}
	if s.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("store.rate_limit.requests_per_second must not be negative"))
	}
	if s.RateLimit.RequestsPerSecond > 0 && s.RateLimit.BurstSize < 1 {
		errs = append(errs, errors.New("store.rate_limit.burst_size must be >= 1 when rate limiting is enabled"))
	}

	return errors.Join(errs...)
}

func (h *HealthConfig) validate() error {
	var errs []error

	if h.Timeout <= 0 {
		errs = append(errs, errors.New("health.timeout must be positive"))
	}
	if h.CountWorkers < 1 {
		errs = append(errs, fmt.Errorf("health.count_workers must be >= 1, got %d", h.CountWorkers))
	}

	return errors.Join(errs...)
}

func (u *UsersConfig) validate() error {
	if u.PasswordCost < 4 || u.PasswordCost > maxPasswordCost {
		return fmt.Errorf("users.password_cost must be between 4 and %d, got %d", maxPasswordCost, u.PasswordCost)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
