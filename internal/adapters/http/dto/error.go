package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/domain"
	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
)

const statusError = "error"

// ErrorResponse is the body of every failed request:
//
//	{"status":"error","message":"replica set unavailable","timestamp":"2024-03-12T09:30:00Z"}
//
// Errors lists field problems for validation failures only.
type ErrorResponse struct {
	Status    string        `json:"status"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail names one invalid field.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// statusFor is checked in order; the first matching sentinel wins and
// anything else, health failures included, is a 500.
var statusFor = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusServiceUnavailable},
}

// NewErrorResponse returns the body and status for err. The timestamp is the
// observation time of a *cluster.HealthError when err carries one, now
// otherwise.
func NewErrorResponse(err error, now time.Time) (ErrorResponse, int) {
	resp := ErrorResponse{
		Status:    statusError,
		Message:   err.Error(),
		Timestamp: FormatTime(observedAt(err, now)),
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Message = domain.ErrValidation.Error()
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp, StatusOf(err)
}

// StatusOf maps err to an HTTP status code.
func StatusOf(err error) int {
	for _, m := range statusFor {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// WriteErrorResponse renders err as JSON with its mapped status.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp, status := NewErrorResponse(err, time.Now())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "encoding error response", slog.Any("error", encErr))
	}
}

// FormatTime renders t as RFC 3339 in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func observedAt(err error, now time.Time) time.Time {
	var herr *cluster.HealthError
	if errors.As(err, &herr) && !herr.Timestamp.IsZero() {
		return herr.Timestamp
	}
	return now
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Field: field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int { return cmp.Compare(a.Field, b.Field) })
	return details
}
