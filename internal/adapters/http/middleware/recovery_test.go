package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/replset-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replset-api/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func panicking(v any) http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(v) })
}

func TestRecovery_PanicValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{"string", "nil map write in post codec"},
		{"error", errors.New("replica set status decode")},
		{"int", 42},
		{"struct", struct{ Member string }{"mongo-2:27017"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Recovery(jsonLogger(&buf))(panicking(tt.value))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/posts/1", http.NoBody))

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}

			var body dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.Status != "error" || body.Message != "internal server error" || body.Timestamp == "" {
				t.Errorf("body = %+v", body)
			}

			pv := fmt.Sprint(tt.value)
			if strings.Contains(rec.Body.String(), pv) {
				t.Error("panic value leaked into the response")
			}

			logged := findRecord(logRecords(t, &buf), "panic recovered")
			if logged == nil {
				t.Fatal("missing panic recovered record")
			}
			if logged["panic"] != pv {
				t.Errorf("logged panic = %v, want %q", logged["panic"], pv)
			}
			if stack, _ := logged["stack"].(string); !strings.Contains(stack, "goroutine") {
				t.Error("logged stack missing")
			}
			if logged["method"] != http.MethodDelete || logged["path"] != "/posts/1" {
				t.Errorf("logged method/path = %v %v", logged["method"], logged["path"])
			}
		})
	}
}

func TestRecovery_PassesThroughWithoutPanic(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"65f0"}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", http.NoBody))

	if rec.Code != http.StatusCreated || rec.Body.String() != `{"_id":"65f0"}` {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRecovery_LogsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.RequestID()(middleware.Recovery(jsonLogger(&buf))(panicking("boom")))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "req-panic")
	h.ServeHTTP(httptest.NewRecorder(), req)

	logged := findRecord(logRecords(t, &buf), "panic recovered")
	if logged == nil || logged["request_id"] != "req-panic" {
		t.Errorf("panic record = %v, want request_id req-panic", logged)
	}
}

func TestRecovery_KeepsStatusWhenHeadersSent(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"_id":`))
		panic("cursor decode")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want the already sent 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "internal server error") {
		t.Error("error body appended after headers were sent")
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(panicking(http.ErrAbortHandler))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	t.Error("ServeHTTP returned, want re-panic")
}
