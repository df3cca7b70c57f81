package ports

import (
	"context"

	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
)

// ClusterDriver is the outbound port to the replicated document store.
// Implemented by the mongodb adapter; driven by the connection manager and
// the health and info reporters.
type ClusterDriver interface {
	// Connect opens the connection pool and blocks until a member matching
	// the configured read preference is reachable or ctx expires. Topology
	// changes observed after a successful connect are reported through
	// events until Disconnect is called.
	Connect(ctx context.Context, cfg cluster.Config, events func(cluster.DriverEvent)) error

	// Disconnect closes the pool. Calling it without a prior Connect is a no-op.
	Disconnect(ctx context.Context) error

	// Ping round-trips to a member chosen by the configured read preference.
	Ping(ctx context.Context) error

	// ReplicaSetStatus runs replSetGetStatus and returns the parsed members
	// in server order.
	ReplicaSetStatus(ctx context.Context) (*cluster.ReplicaSetStatus, error)

	// DatabaseName returns the application database name.
	DatabaseName() string

	// ListCollections returns the collection names of the application database.
	ListCollections(ctx context.Context) ([]string, error)

	// CountDocuments returns the number of documents in a collection.
	CountDocuments(ctx context.Context, collection string) (int64, error)
}

// Repository is the outbound storage port for a single entity kind.
// E is the entity pointer type and P its patch pointer type.
type Repository[E, P any] interface {
	// Create inserts the entity and returns it with server-assigned fields
	// (ID, timestamps).
	Create(ctx context.Context, entity E) (E, error)

	// List returns every stored entity.
	List(ctx context.Context) ([]E, error)

	// Get returns a single entity by ID.
	// Returns domain.ErrNotFound if it does not exist and a
	// *domain.ValidationError if id is malformed.
	Get(ctx context.Context, id string) (E, error)

	// Update applies the patch and returns the updated entity.
	// Returns domain.ErrNotFound if the entity does not exist.
	Update(ctx context.Context, id string, patch P) (E, error)

	// Delete removes a single entity and returns what was removed.
	// Returns domain.ErrNotFound if the entity does not exist.
	Delete(ctx context.Context, id string) (E, error)

	// DeleteAll removes every entity and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// LikeLinker maintains the list of like IDs embedded in a post.
type LikeLinker interface {
	// LinkLike appends likeID to the post's likes.
	// Returns domain.ErrNotFound if the post does not exist.
	LinkLike(ctx context.Context, postID, likeID string) error

	// UnlinkLike removes likeID from the post's likes. A missing post or
	// like ID is not an error.
	UnlinkLike(ctx context.Context, postID, likeID string) error

	// UnlinkAllLikes empties the likes list of every post.
	UnlinkAllLikes(ctx context.Context) error
}
