package replset

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// Compile-time check that HealthReporter implements ports.HealthReporter.
var _ ports.HealthReporter = (*HealthReporter)(nil)

// StateSource reports the current connection state.
type StateSource interface {
	State() cluster.ConnectionState
}

// HealthRecorder receives the outcome of every health check.
type HealthRecorder interface {
	ObserveHealth(report *cluster.HealthReport, err error, duration time.Duration)
}

// HealthReporter assesses replica-set health on demand. It holds no mutable
// state and is safe for concurrent use.
type HealthReporter struct {
	state    StateSource
	driver   ports.ClusterDriver
	timeout  time.Duration
	recorder HealthRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewHealthReporter creates a HealthReporter. timeout bounds each check and
// zero disables the bound. recorder may be nil.
func NewHealthReporter(
	state StateSource,
	driver ports.ClusterDriver,
	timeout time.Duration,
	recorder HealthRecorder,
	logger *slog.Logger,
) *HealthReporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HealthReporter{
		state:    state,
		driver:   driver,
		timeout:  timeout,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// CheckHealth pings the cluster, reads replica-set status and summarizes
// member health. Failures are returned as *cluster.HealthError. The driver
// is not called unless the connection is Connected.
func (r *HealthReporter) CheckHealth(ctx context.Context) (*cluster.HealthReport, error) {
	start := r.now()
	report, err := r.check(ctx, start)
	if r.recorder != nil {
		r.recorder.ObserveHealth(report, err, r.now().Sub(start))
	}
	if err != nil {
		r.logger.WarnContext(ctx, "replica set health check failed",
			slog.String("operation", "CheckHealth"),
			slog.Any("error", err),
		)
	}
	return report, err
}

func (r *HealthReporter) check(ctx context.Context, at time.Time) (*cluster.HealthReport, error) {
	if r.state.State() != cluster.Connected {
		return nil, cluster.NewHealthError(cluster.ErrNotConnected, nil, at)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	if err := r.driver.Ping(ctx); err != nil {
		return nil, cluster.NewHealthError(cluster.ErrPingFailed, err, r.now())
	}

	status, err := r.driver.ReplicaSetStatus(ctx)
	if err != nil {
		return nil, cluster.NewHealthError(cluster.ErrStatusFailed, err, r.now())
	}

	report := cluster.NewHealthReport(*status, r.now())
	if report.Healthy == 0 {
		return nil, cluster.NewHealthError(cluster.ErrNoHealthyNodes, nil, report.CheckedAt)
	}
	return report, nil
}
