package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/replset-api/internal/app/context"
)

// AppContext returns middleware that attaches a fresh RequestContext to each
// request. Services use it to memoize lookups and stage compensable writes
// for the lifetime of one request; see appctx.FromContext.
//
// Register it after Logging and Timeout so the RequestContext carries the
// request logger and deadline.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
