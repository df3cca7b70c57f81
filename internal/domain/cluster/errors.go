package cluster

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrConnect    = errors.New("cluster connect failed")
	ErrDisconnect = errors.New("cluster disconnect failed")

	ErrNotConnected   = errors.New("database connection is not ready")
	ErrPingFailed     = errors.New("database ping failed")
	ErrStatusFailed   = errors.New("replica set status unavailable")
	ErrNoHealthyNodes = errors.New("no healthy nodes in the replica set")
)

// ConnectError reports that no member became reachable within the
// server-selection timeout on any attempt.
type ConnectError struct {
	Attempts int
	Timeout  time.Duration
	Err      error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("%s after %d attempt(s) (server selection timeout %s): %v",
		ErrConnect.Error(), e.Attempts, e.Timeout, e.Err)
}

func (e *ConnectError) Unwrap() []error {
	return []error{ErrConnect, e.Err}
}

// DisconnectError wraps a failure to close the connection pool. It is only
// ever logged.
type DisconnectError struct {
	Err error
}

func (e *DisconnectError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDisconnect.Error(), e.Err)
}

func (e *DisconnectError) Unwrap() []error {
	return []error{ErrDisconnect, e.Err}
}

// HealthError is the structured failure of a health check. Kind is one of
// ErrNotConnected, ErrPingFailed, ErrStatusFailed or ErrNoHealthyNodes.
type HealthError struct {
	Kind      error
	Err       error
	Timestamp time.Time
}

// NewHealthError builds a HealthError stamped with the given time.
func NewHealthError(kind, cause error, at time.Time) *HealthError {
	return &HealthError{Kind: kind, Err: cause, Timestamp: at}
}

func (e *HealthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind.Error(), e.Err)
	}
	return e.Kind.Error()
}

func (e *HealthError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
