package config

const (
	defaultServerPort = 8080

	defaultMaxPoolSize = 50
	defaultMinPoolSize = 10

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCountWorkers = 4
	defaultPasswordCost = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",
		"server.drain_timeout":   "15s",

		"log.level":  "info",
		"log.format": "json",

		"mongo.uri":                            "",
		"mongo.seeds":                          []string{"localhost:27017"},
		"mongo.replica_set":                    "rs0",
		"mongo.database":                       "app",
		"mongo.read_preference":                "secondaryPreferred",
		"mongo.server_selection_timeout":       "5s",
		"mongo.timeout":                        "10s",
		"mongo.max_pool_size":                  defaultMaxPoolSize,
		"mongo.min_pool_size":                  defaultMinPoolSize,
		"mongo.app_name":                       "replset-api",
		"mongo.connect_retry.max_attempts":     defaultRetryMaxAttempts,
		"mongo.connect_retry.initial_interval": "1s",
		"mongo.connect_retry.max_interval":     "5s",
		"mongo.connect_retry.multiplier":       defaultRetryMultiplier,

		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"store.rate_limit.requests_per_second":  0,
		"store.rate_limit.burst_size":           0,

		"health.timeout":       "5s",
		"health.count_workers": defaultCountWorkers,

		"users.password_cost": defaultPasswordCost,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "replset-api",
	}
}
