package domain

import "context"

// Action represents a single executable write with rollback capability.
// Implementations should be idempotent where possible to support safe retries.
type Action interface {
	// Execute performs the action. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the action for
	// logging purposes (e.g., "link like 65f0... to post 65e1...").
	Description() string
}
