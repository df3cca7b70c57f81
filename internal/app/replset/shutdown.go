package replset

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ShutdownFunc is run before the connection is closed, e.g. to drain the
// HTTP server.
type ShutdownFunc func(ctx context.Context) error

// InstallShutdownHook arranges for SIGINT or SIGTERM (or cancellation of
// ctx) to run the before hooks in order, then Disconnect, all within
// timeout. The returned channel is closed once teardown has finished.
// Signals received while teardown is running are logged and ignored.
func (m *Manager) InstallShutdownHook(ctx context.Context, timeout time.Duration, before ...ShutdownFunc) <-chan struct{} {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return m.installShutdownHook(ctx, sigs, func() { signal.Stop(sigs) }, timeout, before...)
}

func (m *Manager) installShutdownHook(
	ctx context.Context,
	sigs <-chan os.Signal,
	stop func(),
	timeout time.Duration,
	before ...ShutdownFunc,
) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer stop()

		select {
		case sig := <-sigs:
			m.logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		case <-ctx.Done():
			m.logger.Info("shutdown requested", slog.Any("reason", context.Cause(ctx)))
		}

		teardown := make(chan struct{})
		go func() {
			for {
				select {
				case sig := <-sigs:
					m.logger.Warn("shutdown already in progress, ignoring signal",
						slog.String("signal", sig.String()))
				case <-teardown:
					return
				}
			}
		}()
		defer close(teardown)

		tctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			tctx, cancel = context.WithTimeout(tctx, timeout)
			defer cancel()
		}

		for _, hook := range before {
			if err := hook(tctx); err != nil {
				m.logger.Error("shutdown hook failed", slog.Any("error", err))
			}
		}

		if err := m.Disconnect(tctx); err != nil {
			m.logger.Error("failed to close replica set connection", slog.Any("error", err))
			return
		}
		m.logger.Info("shutdown complete")
	}()

	return done
}
