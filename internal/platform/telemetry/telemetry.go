// Package telemetry sets up OpenTelemetry tracing and metrics for the
// service and owns the instruments shared by the HTTP layer and the store.
//
//	p, err := telemetry.Setup(ctx, telemetry.Options{
//		ServiceName: "replset-api",
//		Exporter:    telemetry.ExporterOTLP,
//		Endpoint:    "http://otel-collector:4318",
//	})
//	defer p.Shutdown(ctx)
//
//	p.Metrics.StoreOperationTotal.Add(ctx, 1, ...)
//
// Spans and metrics go to stdout in development and to an OTLP/HTTP
// collector in production.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	// ErrUnsupportedExporter is returned for an exporter name other than
	// ExporterStdout or ExporterOTLP.
	ErrUnsupportedExporter = errors.New("unsupported exporter")

	// ErrMissingEndpoint is returned for ExporterOTLP without an endpoint.
	ErrMissingEndpoint = errors.New("otlp exporter requires an endpoint")
)

// Metric attribute keys. Store keys follow the OpenTelemetry database
// semantic conventions.
var (
	AttrHTTPMethod   = attribute.Key("http.method")
	AttrHTTPStatus   = attribute.Key("http.status_code")
	AttrHTTPRoute    = attribute.Key("http.route")
	AttrDBSystem     = attribute.Key("db.system")
	AttrDBOperation  = attribute.Key("db.operation.name")
	AttrDBCollection = attribute.Key("db.collection.name")
	AttrResult       = attribute.Key("result")
)

// Metrics are the instruments recorded by the HTTP middleware
// (ServerRequest*) and the mongodb Guard (StoreOperation*).
type Metrics struct {
	ServerRequestDuration  metric.Float64Histogram
	ServerRequestTotal     metric.Int64Counter
	StoreOperationDuration metric.Float64Histogram
	StoreOperationTotal    metric.Int64Counter
}

// Options selects where telemetry is exported.
type Options struct {
	ServiceName string
	Exporter    string
	Endpoint    string
}

// Providers owns the global tracer and meter providers installed by Setup.
// The zero value is a disabled pipeline: Metrics is nil and Shutdown is a
// no-op.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup installs global tracer and meter providers and registers the
// service's instruments. On error nothing is left running.
func Setup(ctx context.Context, opts Options) (*Providers, error) {
	tp, err := InitTracer(ctx, opts.ServiceName, opts.Exporter, opts.Endpoint)
	if err != nil {
		return nil, err
	}
	p := &Providers{Tracer: tp}

	if p.Meter, err = InitMeter(ctx, opts.ServiceName, opts.Exporter, opts.Endpoint); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}
	if p.Metrics, err = NewMetrics(p.Meter, opts.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}
	return p, nil
}

// Shutdown flushes pending spans and metrics. Safe on a nil or zero
// Providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// InitTracer installs a batching TracerProvider as the global provider,
// together with W3C trace-context and baggage propagation. The caller shuts
// it down.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var exp sdktrace.SpanExporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		var target collector
		if target, err = parseCollector(endpoint); err == nil {
			exp, err = otlptracehttp.New(ctx, target.traceOptions()...)
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a periodically exporting MeterProvider as the global
// provider. Exporter rules match InitTracer. The caller shuts it down.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var exp sdkmetric.Exporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdoutmetric.New()
	case ExporterOTLP:
		var target collector
		if target, err = parseCollector(endpoint); err == nil {
			exp, err = otlpmetrichttp.New(ctx, target.metricOptions()...)
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics registers the service's instruments on mp under the given
// instrumentation scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	var (
		m    Metrics
		errs []error
	)

	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Incoming HTTP requests", "{request}")
	m.StoreOperationDuration = histogram("db.client.operation.duration", "Duration of replica set operations")
	m.StoreOperationTotal = counter("db.client.operation.total", "Replica set operations", "{operation}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}

// collector is a parsed OTLP/HTTP endpoint.
type collector struct {
	hostPort string
	insecure bool
}

// parseCollector accepts "http://host:port", "https://host:port" or a bare
// "host:port", which is treated as plain HTTP.
func parseCollector(endpoint string) (collector, error) {
	if endpoint == "" {
		return collector{}, ErrMissingEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return collector{hostPort: endpoint, insecure: true}, nil
	}
	return collector{hostPort: u.Host, insecure: u.Scheme != "https"}, nil
}

func (c collector) traceOptions() []otlptracehttp.Option {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(c.hostPort)}
	if c.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

func (c collector) metricOptions() []otlpmetrichttp.Option {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(c.hostPort)}
	if c.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return opts
}
