package ports

import (
	"context"

	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
)

// Entity is satisfied by the pointer types of the stored domain entities.
type Entity interface {
	Validate() error
}

// Patch is satisfied by the pointer types of the entity patches.
type Patch interface {
	Validate() error
	IsEmpty() bool
}

// CRUDService defines the service port for a single resource.
// Implemented by the application layer; called by inbound adapters (handlers).
type CRUDService[E Entity, P Patch] interface {
	// Create validates and stores a new entity.
	// Returns domain.ErrValidation if the entity fails validation.
	Create(ctx context.Context, entity E) (E, error)

	// List returns every entity.
	List(ctx context.Context) ([]E, error)

	// Get returns a single entity by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (E, error)

	// Update applies a partial update. An empty patch returns the current
	// entity without writing.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, id string, patch P) (E, error)

	// Delete removes a single entity.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every entity of this kind.
	DeleteAll(ctx context.Context) error
}

// HealthReporter produces a point-in-time assessment of the replica set.
type HealthReporter interface {
	// CheckHealth returns a report, or a *cluster.HealthError describing
	// why the cluster is not healthy.
	CheckHealth(ctx context.Context) (*cluster.HealthReport, error)
}

// InfoReporter produces a snapshot of the application database.
type InfoReporter interface {
	Snapshot(ctx context.Context) (*cluster.DatabaseInfo, error)
}
