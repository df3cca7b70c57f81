package ports

import "context"

// HealthChecker is a dependency the readiness probe can interrogate.
// The replica-set connection manager and the store circuit breaker both
// implement it.
type HealthChecker interface {
	// Name keys the checker's result in the readiness body, e.g. "mongodb".
	Name() string

	// HealthCheck returns nil when the dependency can serve traffic.
	// It must return promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered checker and maps name to result.
	// A nil entry means that dependency is ready.
	CheckAll(ctx context.Context) map[string]error
}
