package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/replset-api/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders converts request headers into slog attributes for debug
// logging. Headers listed in logging.SensitiveHeaders are replaced with
// "[REDACTED]". Multi-value headers are joined with a comma and attributes
// are sorted by header name so log lines are stable.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := strings.Join(headers[name], ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = redactedValue
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
