package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/platform/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  2 * time.Minute,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Mongo: config.MongoConfig{
			Seeds:                  []string{"mongo1:27017", "mongo2:27017", "mongo3:27017"},
			ReplicaSet:             "rs0",
			Database:               "app",
			ReadPreference:         "secondaryPreferred",
			ServerSelectionTimeout: 5 * time.Second,
			Timeout:                10 * time.Second,
			MaxPoolSize:            50,
			MinPoolSize:            10,
			ConnectRetry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: time.Second,
				MaxInterval:     5 * time.Second,
				Multiplier:      2,
			},
		},
		Store: config.StoreConfig{
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
		},
		Health:    config.HealthConfig{Timeout: 5 * time.Second, CountWorkers: 4},
		Users:     config.UsersConfig{PasswordCost: 10},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
	}
}

func TestValidate_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"defaults", func(*config.Config) {}},
		{"uri without seeds", func(c *config.Config) {
			c.Mongo.Seeds = nil
			c.Mongo.URI = "mongodb://mongo1:27017/?replicaSet=rs0"
		}},
		{"unbounded pool", func(c *config.Config) { c.Mongo.MaxPoolSize, c.Mongo.MinPoolSize = 0, 5 }},
		{"rate limited", func(c *config.Config) {
			c.Store.RateLimit = config.RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10}
		}},
		{"telemetry disabled ignores exporter", func(c *config.Config) { c.Telemetry.Exporter = "zipkin" }},
		{"otlp with endpoint", func(c *config.Config) {
			c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp", Endpoint: "http://otel:4318"}
		}},
		{"request timeout disabled", func(c *config.Config) { c.Server.RequestTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := validConfig()
			tt.mutate(c)
			if err := c.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantKey string
	}{
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *config.Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative request timeout", func(c *config.Config) { c.Server.RequestTimeout = -time.Second }, "server.request_timeout"},
		{"log level", func(c *config.Config) { c.Log.Level = "verbose" }, "log.level"},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format"},
		{"no endpoints", func(c *config.Config) { c.Mongo.Seeds = nil }, "mongo.uri or mongo.seeds"},
		{"blank seed", func(c *config.Config) { c.Mongo.Seeds = []string{"mongo1:27017", " "} }, "mongo.seeds[1]"},
		{"no database", func(c *config.Config) { c.Mongo.Database = "" }, "mongo.database"},
		{"read preference", func(c *config.Config) { c.Mongo.ReadPreference = "closest" }, "mongo.read_preference"},
		{"selection timeout", func(c *config.Config) { c.Mongo.ServerSelectionTimeout = 0 }, "mongo.server_selection_timeout"},
		{"op timeout", func(c *config.Config) { c.Mongo.Timeout = 0 }, "mongo.timeout"},
		{"min above max pool", func(c *config.Config) { c.Mongo.MinPoolSize = 100 }, "mongo.min_pool_size"},
		{"negative pool", func(c *config.Config) { c.Mongo.MaxPoolSize = -1 }, "pool sizes"},
		{"no connect attempts", func(c *config.Config) { c.Mongo.ConnectRetry.MaxAttempts = 0 }, "max_attempts"},
		{"zero multiplier", func(c *config.Config) { c.Mongo.ConnectRetry.Multiplier = 0 }, "multiplier"},
		{"breaker threshold", func(c *config.Config) { c.Store.CircuitBreaker.MaxFailures = 0 }, "max_failures"},
		{"rate without burst", func(c *config.Config) { c.Store.RateLimit.RequestsPerSecond = 10 }, "burst_size"},
		{"health timeout", func(c *config.Config) { c.Health.Timeout = 0 }, "health.timeout"},
		{"count workers", func(c *config.Config) { c.Health.CountWorkers = 0 }, "count_workers"},
		{"bcrypt cost low", func(c *config.Config) { c.Users.PasswordCost = 3 }, "password_cost"},
		{"bcrypt cost high", func(c *config.Config) { c.Users.PasswordCost = 32 }, "password_cost"},
		{"unknown exporter", func(c *config.Config) {
			c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "zipkin"}
		}, "telemetry.exporter"},
		{"otlp without endpoint", func(c *config.Config) {
			c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"}
		}, "telemetry.endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantKey)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	c := validConfig()
	c.Server.Port = 0
	c.Mongo.Database = ""
	c.Health.CountWorkers = 0

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	for _, key := range []string{"server.port", "mongo.database", "health.count_workers"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}
