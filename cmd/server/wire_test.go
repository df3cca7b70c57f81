package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/replset-api/internal/adapters/http"
	appctx "github.com/jsamuelsen11/replset-api/internal/app/context"
	"github.com/jsamuelsen11/replset-api/internal/app/replset"
	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
	"github.com/jsamuelsen11/replset-api/internal/platform/config"
	"github.com/jsamuelsen11/replset-api/internal/platform/metrics"
	"github.com/jsamuelsen11/replset-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

func TestWire_ResolvesGraphWithoutConnecting(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("local", config.WithConfigDir("../../configs"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	logger := slog.New(slog.DiscardHandler)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, (*telemetry.Metrics)(nil))
	do.ProvideValue(injector, metrics.New())
	wire(injector, cfg, logger)

	if _, err := do.Invoke[*adapthttp.Server](injector); err != nil {
		t.Fatalf("Invoke[*Server]() error = %v", err)
	}
	manager, err := do.Invoke[*replset.Manager](injector)
	if err != nil {
		t.Fatalf("Invoke[*Manager]() error = %v", err)
	}
	if got := manager.State(); got != cluster.Disconnected {
		t.Errorf("State() = %v before Connect, want %v", got, cluster.Disconnected)
	}
	if _, err := do.Invoke[ports.HealthRegistry](injector); err != nil {
		t.Errorf("Invoke[HealthRegistry]() error = %v", err)
	}
}

func TestClusterConfig(t *testing.T) {
	t.Parallel()

	got := clusterConfig(config.MongoConfig{
		Seeds:                  []string{"mongo1:27017", "mongo2:27017"},
		ReplicaSet:             "rs0",
		Database:               "commonDB",
		ReadPreference:         "primary",
		ServerSelectionTimeout: 3 * time.Second,
		Timeout:                8 * time.Second,
		MaxPoolSize:            20,
		MinPoolSize:            -1,
		AppName:                "replset-api",
	})

	if !slices.Equal(got.Seeds(), []string{"mongo1:27017", "mongo2:27017"}) {
		t.Errorf("Seeds() = %v", got.Seeds())
	}
	if got.ReplicaSet() != "rs0" || got.Database() != "commonDB" || got.AppName() != "replset-api" {
		t.Errorf("names = %q %q %q", got.ReplicaSet(), got.Database(), got.AppName())
	}
	if got.ReadPreference() != cluster.ReadPrimary {
		t.Errorf("ReadPreference() = %q", got.ReadPreference())
	}
	if got.ServerSelectionTimeout() != 3*time.Second || got.OperationTimeout() != 8*time.Second {
		t.Errorf("timeouts = %v %v", got.ServerSelectionTimeout(), got.OperationTimeout())
	}
	if got.MaxPoolSize() != 20 || got.MinPoolSize() != 0 {
		t.Errorf("pool = %d..%d, want 0..20", got.MinPoolSize(), got.MaxPoolSize())
	}
}

func TestMiddlewareChain_LookupsShareRequestDeadline(t *testing.T) {
	t.Parallel()

	chain := middlewareChain(config.ServerConfig{RequestTimeout: time.Minute}, slog.New(slog.DiscardHandler), nil)

	var hasDeadline bool
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := appctx.FromContext(r.Context())
		_, _ = appctx.GetOrFetch(rc, "user:65f0c0ffee0000000000beef", func(ctx context.Context) (string, error) {
			_, hasDeadline = ctx.Deadline()
			return "ada", nil
		})
		w.WriteHeader(http.StatusNoContent)
	})
	for _, mw := range slices.Backward(chain) {
		h = mw(h)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/likes", http.NoBody))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if !hasDeadline {
		t.Error("GetOrFetch context has no deadline; request timeout not applied to lookups")
	}
}
