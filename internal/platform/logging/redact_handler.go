package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values are never
// logged. The HTTP middleware's RedactHeaders and the masq layer below both
// read it.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"x-auth-token":        true,
	"cookie":              true,
	"set-cookie":          true,
}

// Attribute keys and struct fields that hold credentials. Password and
// PasswordHash cover a *user.User passed to slog.Any; uri covers
// mongo.uri from the config dump at startup.
var sensitiveFields = []string{
	"password",
	"Password",
	"PasswordHash",
	"secret",
	"token",
	"uri",
	"URI",
}

var sensitivePrefixes = []string{"secret_", "api_key"}

// Value patterns catch credentials that slipped into free-form strings such
// as wrapped driver errors.
var sensitivePatterns = []*regexp.Regexp{
	// Userinfo of a connection string: mongodb://app:pw@ or mongodb+srv://app:pw@.
	regexp.MustCompile(`mongodb(\+srv)?://[^/\s:@]+:[^@\s]+@`),
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWT: three base64url segments of ten or more characters.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// newRedactAttr builds the slog ReplaceAttr hook every handler from New uses.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitivePatterns))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, f := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(f))
	}
	for _, p := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range sensitivePatterns {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
