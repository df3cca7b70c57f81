package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/replset-api/internal/adapters/http/middleware"
)

// serveRequestID runs RequestID with the given incoming header and returns
// the ID the handler saw and the echoed response header.
func serveRequestID(t *testing.T, header string) (seen, echoed string) {
	t.Helper()
	h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", http.NoBody)
	if header != "" {
		req.Header.Set("X-Request-ID", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec.Header().Get("X-Request-ID")
}

func TestRequestID_KeepsWellFormedHeader(t *testing.T) {
	t.Parallel()

	for _, id := range []string{
		"abc-123",
		"00f3c1d2-7e1b-4d7c-9c1f-2b4a5e6f7a8b",
		"trace:span/1",
		strings.Repeat("r", 128),
	} {
		seen, echoed := serveRequestID(t, id)
		if seen != id || echoed != id {
			t.Errorf("header %q: context %q, echoed %q", id, seen, echoed)
		}
	}
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{"absent", ""},
		{"contains space", "two words"},
		{"newline injection", "id\nlevel=ERROR"},
		{"non ascii", "idé"},
		{"too long", strings.Repeat("r", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seen, echoed := serveRequestID(t, tt.header)
			if _, err := uuid.Parse(seen); err != nil {
				t.Errorf("context id %q is not a UUID: %v", seen, err)
			}
			if echoed != seen {
				t.Errorf("echoed %q, context %q", echoed, seen)
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	ids := map[string]bool{}
	for range 50 {
		id, _ := serveRequestID(t, "")
		if ids[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		ids[id] = true
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	if got := middleware.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context = %q, want \"\"", got)
	}
	ctx := middleware.WithRequestID(context.Background(), "shutdown-drain")
	if got := middleware.RequestIDFromContext(ctx); got != "shutdown-drain" {
		t.Errorf("RequestIDFromContext = %q", got)
	}
}
