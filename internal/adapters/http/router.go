// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/replset-api/internal/adapters/http/handlers"
)

// Handlers groups the handlers mounted by NewRouter. Metrics may be nil,
// in which case /metrics is not registered.
type Handlers struct {
	Users   *handlers.UserHandler
	Posts   *handlers.PostHandler
	Likes   *handlers.LikeHandler
	Cluster *handlers.ClusterHandler
	Health  *handlers.HealthHandler
	Metrics http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Cluster status.
	r.Get("/", h.Cluster.Info)
	r.Get("/health", h.Cluster.Health)

	// Process probes.
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/users", h.Users.Routes)
	r.Route("/posts", h.Posts.Routes)
	r.Route("/likes", h.Likes.Routes)

	return r
}
