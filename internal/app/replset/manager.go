// Package replset owns the process's single connection to the replica set:
// the connection state machine and its observers, graceful shutdown, and the
// health and info reporters built on top of the cluster driver port.
package replset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

var (
	// ErrClosed is returned by Connect after Disconnect has been called, and
	// wrapped by a Connect that Disconnect interrupted.
	ErrClosed = errors.New("connection manager is closed")

	// ErrConnectInProgress is returned by a Connect that overlaps another.
	ErrConnectInProgress = errors.New("connect already in progress")
)

// Compile-time check that Manager can be registered for readiness.
var _ ports.HealthChecker = (*Manager)(nil)

// RetryPolicy bounds connect attempts. Each attempt is itself bounded by
// the cluster's server-selection timeout.
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// Manager owns one logical connection to the replica set. State changes are
// serialized: observers see every transition exactly once and in order.
// Observers run while the manager holds its transition lock and must not
// call back into Connect or Disconnect.
type Manager struct {
	cfg    cluster.Config
	driver ports.ClusterDriver
	retry  RetryPolicy
	logger *slog.Logger
	now    func() time.Time

	state atomic.Int32

	// mu serializes transitions and observer dispatch.
	mu      sync.Mutex
	started bool
	closed  bool
	// abort and connecting are set while a Connect is in flight.
	abort      context.CancelCauseFunc
	connecting chan struct{}

	obsMu     sync.RWMutex
	observers []cluster.Observer
	logOnce   sync.Once
}

// NewManager creates a Manager in the Disconnected state. A nil logger is
// replaced with a no-op logger; a zero MaxAttempts means a single attempt.
func NewManager(cfg cluster.Config, driver ports.ClusterDriver, retry RetryPolicy, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	m := &Manager{
		cfg:    cfg,
		driver: driver,
		retry:  retry,
		logger: logger.With(slog.String("component", "replset")),
		now:    time.Now,
	}
	m.state.Store(int32(cluster.Disconnected))
	return m
}

// State returns the current connection state.
func (m *Manager) State() cluster.ConnectionState {
	return cluster.ConnectionState(m.state.Load())
}

// Config returns the cluster configuration the manager connects with.
func (m *Manager) Config() cluster.Config {
	return m.cfg
}

// OnStateChange registers an observer for all subsequent transitions.
func (m *Manager) OnStateChange(observer cluster.Observer) {
	if observer == nil {
		return
	}
	m.obsMu.Lock()
	defer m.obsMu.Unlock()
	m.observers = append(m.observers, observer)
}

// Connect opens the connection, retrying with exponential backoff until
// the retry policy is exhausted. Calling it while Connected is a no-op.
// The lifecycle logging observer is registered before the first attempt
// so the initial transitions are logged. Exhaustion returns a
// *cluster.ConnectError. A concurrent Disconnect cancels the attempt in
// flight and the returned error wraps ErrClosed.
func (m *Manager) Connect(ctx context.Context) error {
	m.logOnce.Do(func() { m.OnStateChange(m.logTransition) })

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if m.connecting != nil {
		m.mu.Unlock()
		return ErrConnectInProgress
	}
	m.started = true
	if m.State() == cluster.Connected {
		m.mu.Unlock()
		return nil
	}
	ctx, abort := context.WithCancelCause(ctx)
	done := make(chan struct{})
	m.abort, m.connecting = abort, done
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.abort, m.connecting = nil, nil
		m.mu.Unlock()
		abort(nil)
		close(done)
	}()

	return m.connectWithRetry(ctx)
}

func (m *Manager) connectWithRetry(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	if m.retry.InitialInterval > 0 {
		b.InitialInterval = m.retry.InitialInterval
	}
	if m.retry.MaxInterval > 0 {
		b.MaxInterval = m.retry.MaxInterval
	}
	if m.retry.Multiplier > 0 {
		b.Multiplier = m.retry.Multiplier
	}
	b.MaxElapsedTime = 0
	b.Reset()

	var lastErr error
	for attempt := 1; attempt <= m.retry.MaxAttempts; attempt++ {
		lastErr = m.attempt(ctx)
		if lastErr == nil {
			return nil
		}
		if errors.Is(context.Cause(ctx), ErrClosed) && !errors.Is(lastErr, ErrClosed) {
			lastErr = fmt.Errorf("%w: %w", ErrClosed, lastErr)
		}
		if errors.Is(lastErr, ErrClosed) || ctx.Err() != nil {
			return m.connectError(attempt, lastErr)
		}
		if attempt == m.retry.MaxAttempts {
			return m.connectError(attempt, lastErr)
		}

		wait := b.NextBackOff()
		m.logger.WarnContext(ctx, "connect attempt failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", m.retry.MaxAttempts),
			slog.Duration("backoff", wait),
			slog.Any("error", lastErr),
		)
		if !sleepWithContext(ctx, wait) {
			return m.connectError(attempt, context.Cause(ctx))
		}
	}
	return m.connectError(m.retry.MaxAttempts, lastErr)
}

func (m *Manager) attempt(ctx context.Context) error {
	if !m.transition(cluster.Connecting, nil) && m.isClosed() {
		return ErrClosed
	}

	actx := ctx
	if d := m.cfg.ServerSelectionTimeout(); d > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	if err := m.driver.Connect(actx, m.cfg, m.handleDriverEvent); err != nil {
		m.transition(cluster.Error, err)
		return err
	}
	if !m.transition(cluster.Connected, nil) && m.isClosed() {
		return ErrClosed
	}
	return nil
}

func (m *Manager) connectError(attempts int, err error) error {
	return &cluster.ConnectError{
		Attempts: attempts,
		Timeout:  m.cfg.ServerSelectionTimeout(),
		Err:      err,
	}
}

// Disconnect closes the connection pool and leaves the manager in a
// terminal Disconnected state. It is idempotent and a no-op when Connect was
// never called. A Connect in flight is cancelled and awaited first. A
// failure to close is returned as *cluster.DisconnectError; the state still
// becomes Disconnected.
func (m *Manager) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	started := m.started
	abort, connecting := m.abort, m.connecting
	m.mu.Unlock()

	if !started {
		return nil
	}
	if abort != nil {
		abort(ErrClosed)
		select {
		case <-connecting:
		case <-ctx.Done():
			m.logger.Warn("connect still in flight at disconnect", slog.Any("error", ctx.Err()))
		}
	}

	err := m.driver.Disconnect(ctx)

	m.mu.Lock()
	m.transitionLocked(cluster.Disconnected, err)
	m.mu.Unlock()

	if err != nil {
		return &cluster.DisconnectError{Err: err}
	}
	return nil
}

// Name implements ports.HealthChecker.
func (m *Manager) Name() string {
	return "mongodb"
}

// HealthCheck implements ports.HealthChecker. The connection is ready only
// in the Connected state.
func (m *Manager) HealthCheck(_ context.Context) error {
	if s := m.State(); s != cluster.Connected {
		return fmt.Errorf("%w: state is %s", cluster.ErrNotConnected, s)
	}
	return nil
}

// handleDriverEvent applies topology changes reported by the driver. Events
// that arrive after Disconnect are dropped.
func (m *Manager) handleDriverEvent(ev cluster.DriverEvent) {
	if ev.State == cluster.Connecting {
		return
	}
	m.transition(ev.State, ev.Err)
}

// transition moves to the target state and reports whether it did.
func (m *Manager) transition(to cluster.ConnectionState, cause error) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false
	}
	return m.transitionLocked(to, cause)
}

// transitionLocked requires m.mu.
func (m *Manager) transitionLocked(to cluster.ConnectionState, cause error) bool {
	from := m.State()
	if from == to {
		return false
	}
	if !cluster.CanTransition(from, to) {
		m.logger.Debug("ignoring illegal state transition",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
		return false
	}

	m.state.Store(int32(to))
	ev := cluster.StateEvent{From: from, To: to, Err: cause, At: m.now()}

	m.obsMu.RLock()
	observers := slices.Clone(m.observers)
	m.obsMu.RUnlock()

	for _, observe := range observers {
		observe(ev)
	}
	return true
}

func (m *Manager) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// logTransition is the built-in lifecycle observer.
func (m *Manager) logTransition(ev cluster.StateEvent) {
	attrs := []any{
		slog.String("from", ev.From.String()),
		slog.String("to", ev.To.String()),
		slog.String("replica_set", m.cfg.ReplicaSet()),
	}

	switch ev.To {
	case cluster.Connecting:
		m.logger.Info("connecting to replica set", append(attrs, slog.Any("seeds", m.cfg.Seeds()))...)
	case cluster.Connected:
		m.logger.Info("connected to replica set", attrs...)
	case cluster.Error:
		m.logger.Error("replica set connection error", append(attrs, slog.Any("error", ev.Err))...)
	case cluster.Disconnected:
		if ev.Err != nil {
			m.logger.Warn("disconnected from replica set", append(attrs, slog.Any("error", ev.Err))...)
			return
		}
		m.logger.Info("disconnected from replica set", attrs...)
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
