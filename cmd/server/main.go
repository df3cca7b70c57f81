// Command server runs the replica set API. APP_PROFILE selects the config
// profile; the process connects to the replica set before it listens and
// drains both on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/replset-api/internal/adapters/http"
	"github.com/jsamuelsen11/replset-api/internal/adapters/mongodb"
	"github.com/jsamuelsen11/replset-api/internal/app/replset"
	"github.com/jsamuelsen11/replset-api/internal/platform/config"
	"github.com/jsamuelsen11/replset-api/internal/platform/logging"
	"github.com/jsamuelsen11/replset-api/internal/platform/metrics"
	"github.com/jsamuelsen11/replset-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

const (
	telemetryFlushTimeout = 5 * time.Second
	envFile               = ".env"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "replset-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must name a config profile such as local, dev or prod")
	}

	cfg, err := config.Load(profile, config.WithEnvFiles(envFile))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Info("starting", slog.String("profile", profile), slog.String("replica_set", cfg.Mongo.ReplicaSet))

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	otelProviders, err := setupTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer flushTelemetry(otelProviders, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otelProviders.Metrics)
	do.ProvideValue(injector, metrics.New())
	wire(injector, cfg, logger)

	// Resolving the server builds the whole graph, so wiring errors surface
	// before any connection is attempted.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	manager := do.MustInvoke[*replset.Manager](injector)
	manager.OnStateChange(do.MustInvoke[*metrics.Metrics](injector).ObserveState)

	// The hook is installed before connecting so a signal during the retry
	// loop aborts it. HTTP drains first, then the pool closes.
	done := manager.InstallShutdownHook(ctx, cfg.Server.DrainTimeout+cfg.Mongo.Timeout, server.Shutdown)

	if err := manager.Connect(ctx); err != nil {
		if errors.Is(err, replset.ErrClosed) {
			<-done
			logger.Info("stopped before the replica set connected")
			return nil
		}
		err = fmt.Errorf("connecting to replica set %s: %w", cfg.Mongo.ReplicaSet, err)
		cancel(err)
		<-done
		return err
	}

	readiness := do.MustInvoke[ports.HealthRegistry](injector)
	readiness.Register(manager)
	readiness.Register(do.MustInvoke[*mongodb.Guard](injector))

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Start() }()

	select {
	case <-done:
		if err := <-serveErr; err != nil {
			logger.Error("http server returned an error", slog.Any("error", err))
		}
	case err := <-serveErr:
		if err == nil {
			// Only the shutdown hook closes the server.
			<-done
			break
		}
		err = fmt.Errorf("serving: %w", err)
		cancel(err)
		<-done
		return err
	}

	logger.Info("stopped")
	return nil
}

// setupTelemetry returns an empty Providers when telemetry is disabled.
func setupTelemetry(ctx context.Context, tc config.TelemetryConfig) (*telemetry.Providers, error) {
	if !tc.Enabled {
		return &telemetry.Providers{}, nil
	}
	return telemetry.Setup(ctx, telemetry.Options{
		ServiceName: tc.ServiceName,
		Exporter:    tc.Exporter,
		Endpoint:    tc.Endpoint,
	})
}

func flushTelemetry(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
	defer cancel()

	if err := p.Shutdown(ctx); err != nil {
		logger.Warn("flushing telemetry", slog.Any("error", err))
	}
}
