// Package mongodb is the outbound adapter for a MongoDB replica set. Driver
// implements [ports.ClusterDriver] for the connection manager and reporters;
// the repositories implement [ports.Repository] for users, posts and likes
// behind a shared [Guard] that adds circuit breaking, rate limiting and
// OpenTelemetry instrumentation to every call.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"

	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// Compile-time interface check.
var _ ports.ClusterDriver = (*Driver)(nil)

// Driver owns the mongo.Client. It is safe for concurrent use; the client is
// swapped in by Connect and cleared by Disconnect.
type Driver struct {
	mu       sync.RWMutex
	client   *mongo.Client
	database string
	readPref *readpref.ReadPref
	tracker  *heartbeatTracker
	logger   *slog.Logger
}

// NewDriver creates a Driver with no open connection.
func NewDriver(logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Driver{logger: logger}
}

// Connect opens a pool against the configured replica set and pings a
// member chosen by the read preference. A failed ping closes the pool so the
// next attempt starts clean.
func (d *Driver) Connect(ctx context.Context, cfg cluster.Config, events func(cluster.DriverEvent)) error {
	rp, err := readPreference(cfg.ReadPreference())
	if err != nil {
		return err
	}

	tracker := newHeartbeatTracker()
	client, err := mongo.Connect(clientOptions(cfg, rp, tracker))
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	if err := client.Ping(ctx, rp); err != nil {
		if derr := client.Disconnect(context.WithoutCancel(ctx)); derr != nil {
			d.logger.Debug("closing pool after failed ping", slog.String("error", derr.Error()))
		}
		return fmt.Errorf("selecting %s member: %w", cfg.ReadPreference(), err)
	}

	d.mu.Lock()
	old := d.client
	d.client = client
	d.database = cfg.Database()
	d.readPref = rp
	d.tracker = tracker
	d.mu.Unlock()

	if old != nil {
		_ = old.Disconnect(context.WithoutCancel(ctx))
	}
	if events != nil {
		tracker.arm(events)
	}
	return nil
}

// Disconnect closes the pool. It is a no-op without a prior Connect.
func (d *Driver) Disconnect(ctx context.Context) error {
	d.mu.Lock()
	client, tracker := d.client, d.tracker
	d.client, d.tracker = nil, nil
	d.mu.Unlock()

	if client == nil {
		return nil
	}
	if tracker != nil {
		tracker.disarm()
	}
	return client.Disconnect(ctx)
}

// Ping round-trips to a member chosen by the configured read preference.
func (d *Driver) Ping(ctx context.Context) error {
	client, rp, err := d.current()
	if err != nil {
		return err
	}
	return client.Ping(ctx, rp)
}

// replSetStatusDoc is the subset of the replSetGetStatus reply we read.
type replSetStatusDoc struct {
	Set     string             `bson:"set"`
	Members []replSetMemberDoc `bson:"members"`
}

type replSetMemberDoc struct {
	Name     string  `bson:"name"`
	StateStr string  `bson:"stateStr"`
	Health   float64 `bson:"health"`
	Uptime   int64   `bson:"uptime"`
}

// ReplicaSetStatus runs replSetGetStatus against the admin database.
func (d *Driver) ReplicaSetStatus(ctx context.Context) (*cluster.ReplicaSetStatus, error) {
	client, rp, err := d.current()
	if err != nil {
		return nil, err
	}

	var doc replSetStatusDoc
	err = client.Database("admin").
		RunCommand(ctx, bson.D{{Key: "replSetGetStatus", Value: 1}}, options.RunCmd().SetReadPreference(rp)).
		Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("replSetGetStatus: %w", err)
	}
	return toReplicaSetStatus(doc), nil
}

func toReplicaSetStatus(doc replSetStatusDoc) *cluster.ReplicaSetStatus {
	status := &cluster.ReplicaSetStatus{
		SetName: doc.Set,
		Members: make([]cluster.ReplicaMember, 0, len(doc.Members)),
	}
	for _, m := range doc.Members {
		status.Members = append(status.Members, cluster.ReplicaMember{
			Name:   m.Name,
			State:  m.StateStr,
			Health: m.Health,
			Uptime: secondsToDuration(m.Uptime),
		})
	}
	return status
}

// DatabaseName returns the application database name, or "" before Connect.
func (d *Driver) DatabaseName() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.database
}

// ListCollections returns the collection names of the application database.
func (d *Driver) ListCollections(ctx context.Context) ([]string, error) {
	db, err := d.Database()
	if err != nil {
		return nil, err
	}
	names, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	return names, nil
}

// CountDocuments returns the number of documents in a collection.
func (d *Driver) CountDocuments(ctx context.Context, collection string) (int64, error) {
	db, err := d.Database()
	if err != nil {
		return 0, err
	}
	n, err := db.Collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", collection, err)
	}
	return n, nil
}

// Database returns the application database handle. It returns
// cluster.ErrNotConnected until Connect succeeds.
func (d *Driver) Database() (*mongo.Database, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.client == nil {
		return nil, cluster.ErrNotConnected
	}
	return d.client.Database(d.database), nil
}

func (d *Driver) current() (*mongo.Client, *readpref.ReadPref, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.client == nil {
		return nil, nil, cluster.ErrNotConnected
	}
	return d.client, d.readPref, nil
}

func clientOptions(cfg cluster.Config, rp *readpref.ReadPref, tracker *heartbeatTracker) *options.ClientOptions {
	opts := options.Client()
	if cfg.URI() != "" {
		opts.ApplyURI(cfg.URI())
	}
	if seeds := cfg.Seeds(); len(seeds) > 0 {
		opts.SetHosts(seeds)
	}
	if cfg.ReplicaSet() != "" {
		opts.SetReplicaSet(cfg.ReplicaSet())
	}
	if cfg.AppName() != "" {
		opts.SetAppName(cfg.AppName())
	}
	if cfg.ServerSelectionTimeout() > 0 {
		opts.SetServerSelectionTimeout(cfg.ServerSelectionTimeout())
	}
	if cfg.OperationTimeout() > 0 {
		opts.SetTimeout(cfg.OperationTimeout())
	}
	if cfg.MaxPoolSize() > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize())
	}
	opts.SetMinPoolSize(cfg.MinPoolSize())

	return opts.
		SetReadPreference(rp).
		SetRetryWrites(true).
		SetWriteConcern(writeconcern.Majority()).
		SetServerMonitor(tracker.monitor())
}

// errUnknownReadPreference wraps mode parsing failures.
var errUnknownReadPreference = errors.New("unknown read preference")

func readPreference(pref cluster.ReadPreference) (*readpref.ReadPref, error) {
	mode, err := readpref.ModeFromString(string(pref))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errUnknownReadPreference, pref, err)
	}
	rp, err := readpref.New(mode)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errUnknownReadPreference, pref, err)
	}
	return rp, nil
}
