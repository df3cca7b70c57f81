// Package metrics exposes Prometheus collectors for the cluster connection
// and replica-set health, served at /metrics.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
)

// Health check result labels.
const (
	ResultOK             = "ok"
	ResultNotConnected   = "not_connected"
	ResultPingFailed     = "ping_failed"
	ResultStatusFailed   = "status_failed"
	ResultNoHealthyNodes = "no_healthy_nodes"
	ResultError          = "error"
)

var states = []cluster.ConnectionState{
	cluster.Disconnected, cluster.Connecting, cluster.Connected, cluster.Error,
}

// Metrics wraps the Prometheus collectors for replset-api.
type Metrics struct {
	registry            *prometheus.Registry
	connectionState     *prometheus.GaugeVec
	stateTransitions    *prometheus.CounterVec
	membersHealthy      prometheus.Gauge
	membersTotal        prometheus.Gauge
	memberUp            *prometheus.GaugeVec
	healthChecksTotal   *prometheus.CounterVec
	healthCheckDuration prometheus.Histogram
}

// New initializes a Metrics registry with all collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		connectionState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "replset_connection_state",
			Help: "Current connection state (1 for the active state, 0 otherwise).",
		}, []string{"state"}),
		stateTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "replset_state_transitions_total",
			Help: "Connection state transitions by source and target state.",
		}, []string{"from", "to"}),
		membersHealthy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "replset_members_healthy",
			Help: "Healthy replica-set members at the last successful health check.",
		}),
		membersTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "replset_members_total",
			Help: "Replica-set members at the last successful health check.",
		}),
		memberUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "replset_member_up",
			Help: "Per-member health flag at the last successful health check.",
		}, []string{"member"}),
		healthChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "replset_health_checks_total",
			Help: "Health checks by result.",
		}, []string{"result"}),
		healthCheckDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "replset_health_check_duration_seconds",
			Help:    "Duration of replica-set health checks in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(
		m.connectionState,
		m.stateTransitions,
		m.membersHealthy,
		m.membersTotal,
		m.memberUp,
		m.healthChecksTotal,
		m.healthCheckDuration,
	)
	m.setState(cluster.Disconnected)

	return m
}

// Handler returns a Prometheus HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveState records a connection state transition. Its signature matches
// cluster.Observer so it can be registered with the connection manager.
func (m *Metrics) ObserveState(ev cluster.StateEvent) {
	if m == nil {
		return
	}
	m.stateTransitions.WithLabelValues(ev.From.String(), ev.To.String()).Inc()
	m.setState(ev.To)
}

func (m *Metrics) setState(current cluster.ConnectionState) {
	for _, s := range states {
		v := 0.0
		if s == current {
			v = 1
		}
		m.connectionState.WithLabelValues(s.String()).Set(v)
	}
}

// ObserveHealth records the outcome of a health check. Member gauges are
// only updated when a report is available.
func (m *Metrics) ObserveHealth(report *cluster.HealthReport, err error, duration time.Duration) {
	if m == nil {
		return
	}
	m.healthCheckDuration.Observe(duration.Seconds())
	m.healthChecksTotal.WithLabelValues(Result(err)).Inc()

	if report == nil {
		return
	}
	m.membersHealthy.Set(float64(report.Healthy))
	m.membersTotal.Set(float64(report.Total))
	m.memberUp.Reset()
	for _, member := range report.Members {
		v := 0.0
		if member.Healthy {
			v = 1
		}
		m.memberUp.WithLabelValues(member.Name).Set(v)
	}
}

// Result maps a health check error to its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, cluster.ErrNotConnected):
		return ResultNotConnected
	case errors.Is(err, cluster.ErrPingFailed):
		return ResultPingFailed
	case errors.Is(err, cluster.ErrStatusFailed):
		return ResultStatusFailed
	case errors.Is(err, cluster.ErrNoHealthyNodes):
		return ResultNoHealthyNodes
	default:
		return ResultError
	}
}
