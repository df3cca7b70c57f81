package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/replset-api/internal/adapters/http"
	"github.com/jsamuelsen11/replset-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/replset-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/replset-api/internal/adapters/mongodb"
	"github.com/jsamuelsen11/replset-api/internal/app"
	"github.com/jsamuelsen11/replset-api/internal/app/replset"
	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
	"github.com/jsamuelsen11/replset-api/internal/domain/like"
	"github.com/jsamuelsen11/replset-api/internal/domain/post"
	"github.com/jsamuelsen11/replset-api/internal/domain/user"
	"github.com/jsamuelsen11/replset-api/internal/platform/config"
	"github.com/jsamuelsen11/replset-api/internal/platform/health"
	"github.com/jsamuelsen11/replset-api/internal/platform/metrics"
	"github.com/jsamuelsen11/replset-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

type (
	userService = ports.CRUDService[*user.User, *user.Patch]
	postService = ports.CRUDService[*post.Post, *post.Patch]
	likeService = ports.CRUDService[*like.Like, *like.Patch]
)

// wire registers every lazy provider. Values already in the injector:
// *config.Config, *slog.Logger, *telemetry.Metrics (nil when disabled) and
// *metrics.Metrics.
func wire(i *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	wireStore(i, cfg, logger)
	wireServices(i, cfg, logger)
	wireHTTP(i, cfg, logger)
}

func wireStore(i *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(i, func(do.Injector) (*mongodb.Driver, error) {
		return mongodb.NewDriver(logger), nil
	})
	do.Provide(i, func(i do.Injector) (*mongodb.Guard, error) {
		return mongodb.NewGuard(&cfg.Store, do.MustInvoke[*telemetry.Metrics](i), logger), nil
	})
	do.Provide(i, func(i do.Injector) (*replset.Manager, error) {
		r := cfg.Mongo.ConnectRetry
		policy := replset.RetryPolicy{
			MaxAttempts:     r.MaxAttempts,
			InitialInterval: r.InitialInterval,
			MaxInterval:     r.MaxInterval,
			Multiplier:      r.Multiplier,
		}
		return replset.NewManager(clusterConfig(cfg.Mongo), do.MustInvoke[*mongodb.Driver](i), policy, logger), nil
	})

	do.Provide(i, func(i do.Injector) (*mongodb.UserRepository, error) {
		return mongodb.NewUserRepository(do.MustInvoke[*mongodb.Driver](i), do.MustInvoke[*mongodb.Guard](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*mongodb.PostRepository, error) {
		return mongodb.NewPostRepository(do.MustInvoke[*mongodb.Driver](i), do.MustInvoke[*mongodb.Guard](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*mongodb.LikeRepository, error) {
		return mongodb.NewLikeRepository(do.MustInvoke[*mongodb.Driver](i), do.MustInvoke[*mongodb.Guard](i)), nil
	})
}

func wireServices(i *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(i, func(i do.Injector) (userService, error) {
		return app.NewUserService(do.MustInvoke[*mongodb.UserRepository](i), logger, cfg.Users.PasswordCost), nil
	})
	do.Provide(i, func(i do.Injector) (postService, error) {
		return app.NewCRUDService[*post.Post, *post.Patch]("post", do.MustInvoke[*mongodb.PostRepository](i), logger), nil
	})
	do.Provide(i, func(i do.Injector) (likeService, error) {
		posts := do.MustInvoke[*mongodb.PostRepository](i)
		// The post repository both resolves like targets and links likes
		// onto posts.
		return app.NewLikeService(do.MustInvoke[*mongodb.LikeRepository](i),
			do.MustInvoke[*mongodb.UserRepository](i), posts, posts, logger), nil
	})

	do.Provide(i, func(i do.Injector) (ports.HealthReporter, error) {
		return replset.NewHealthReporter(
			do.MustInvoke[*replset.Manager](i),
			do.MustInvoke[*mongodb.Driver](i),
			cfg.Health.Timeout,
			do.MustInvoke[*metrics.Metrics](i),
			logger,
		), nil
	})
	do.Provide(i, func(i do.Injector) (ports.InfoReporter, error) {
		return replset.NewInfoReporter(do.MustInvoke[*mongodb.Driver](i), cfg.Health.CountWorkers, logger), nil
	})
	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithTimeout(cfg.Health.Timeout)), nil
	})
}

func wireHTTP(i *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		routes := adapthttp.Handlers{
			Users:   handlers.NewUserHandler(do.MustInvoke[userService](i)),
			Posts:   handlers.NewPostHandler(do.MustInvoke[postService](i)),
			Likes:   handlers.NewLikeHandler(do.MustInvoke[likeService](i)),
			Cluster: handlers.NewClusterHandler(do.MustInvoke[ports.HealthReporter](i), do.MustInvoke[ports.InfoReporter](i)),
			Health:  handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Metrics: do.MustInvoke[*metrics.Metrics](i).Handler(),
		}

		return adapthttp.NewRouter(routes,
			middlewareChain(cfg.Server, logger, do.MustInvoke[*telemetry.Metrics](i))...,
		), nil
	})

	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

// middlewareChain lists the HTTP middleware outermost first. Recovery also
// catches panics from the rest of the chain. AppContext sits inside
// Timeout so reference lookups share the request deadline.
func middlewareChain(sc config.ServerConfig, logger *slog.Logger, m *telemetry.Metrics) []func(nethttp.Handler) nethttp.Handler {
	return []func(nethttp.Handler) nethttp.Handler{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(m),
		middleware.Logging(logger),
		middleware.Timeout(sc.RequestTimeout),
		middleware.AppContext(),
	}
}

// clusterConfig maps the mongo config section onto the immutable cluster
// description shared by the manager and the driver.
func clusterConfig(m config.MongoConfig) cluster.Config {
	return cluster.NewConfig(cluster.Settings{
		URI:                    m.URI,
		Seeds:                  m.Seeds,
		ReplicaSet:             m.ReplicaSet,
		Database:               m.Database,
		ReadPreference:         cluster.ReadPreference(m.ReadPreference),
		ServerSelectionTimeout: m.ServerSelectionTimeout,
		OperationTimeout:       m.Timeout,
		MaxPoolSize:            uint64(max(m.MaxPoolSize, 0)),
		MinPoolSize:            uint64(max(m.MinPoolSize, 0)),
		AppName:                m.AppName,
	})
}
