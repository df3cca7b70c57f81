// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// cmd/server registers the middleware on the chi router in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → AppContext → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler.
package middleware

import "net/http"

// responseWriter records the status code and body size of a response. The
// recovery, otel and logging middleware share one instance per request.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

// newResponseWriter wraps w, reusing w when it is already a responseWriter.
func newResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records code and forwards it. Only the first call counts.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write forwards b, implying a 200 if no status was written yet.
func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
