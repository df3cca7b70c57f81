package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/replset-api/internal/platform/config"
	"github.com/jsamuelsen11/replset-api/internal/platform/telemetry"
)

// breakerName identifies the store breaker in logs and the readiness registry.
const breakerName = "mongodb-breaker"

// Guard wraps every repository call in the order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → driver call
//
// Metrics are recorded outside the breaker so rejected calls are counted.
type Guard struct {
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil when rate limiting is disabled
	tracer  trace.Tracer
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewGuard builds a Guard from the store settings. If metrics is nil, metric
// recording is skipped.
func NewGuard(cfg *config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return !isFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Guard{
		breaker: cb,
		limiter: limiter,
		tracer:  otel.GetTracerProvider().Tracer("mongodb"),
		metrics: metrics,
		logger:  logger,
	}
}

// Do runs fn for the named operation on a collection. Errors returned by fn
// are passed back untranslated.
func (g *Guard) Do(ctx context.Context, op, collection string, fn func(ctx context.Context) error) error {
	start := time.Now()

	_, err := g.breaker.Execute(func() (struct{}, error) {
		if g.limiter != nil {
			if err := g.limiter.Wait(ctx); err != nil {
				return struct{}{}, fmt.Errorf("waiting for rate limiter: %w", err)
			}
		}

		spanCtx, span := g.tracer.Start(ctx, fmt.Sprintf("mongodb %s %s", op, collection),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("db.system", "mongodb"),
				attribute.String("db.operation.name", op),
				attribute.String("db.collection.name", collection),
			),
		)
		defer span.End()

		err := fn(spanCtx)
		if isFailure(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})

	g.recordMetrics(ctx, op, collection, start, err)
	return err
}

// Name returns the identifier used when the guard is registered with a
// health registry.
func (g *Guard) Name() string {
	return breakerName
}

// HealthCheck reports the store breaker state without a network call.
func (g *Guard) HealthCheck(_ context.Context) error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", breakerName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", breakerName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", breakerName, state)
	}
}

// recordMetrics records operation duration and count. Safe with nil metrics.
func (g *Guard) recordMetrics(ctx context.Context, op, collection string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case isFailure(err):
		result = "error"
	case err != nil:
		result = "rejected"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String("mongodb"),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrDBCollection.String(collection),
		telemetry.AttrResult.String(result),
	)

	g.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
