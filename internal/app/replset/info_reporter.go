package replset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/app/fanout"
	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// Compile-time check that InfoReporter implements ports.InfoReporter.
var _ ports.InfoReporter = (*InfoReporter)(nil)

const defaultCountWorkers = 4

// InfoReporter snapshots the application database: its collections and
// their document counts.
type InfoReporter struct {
	driver  ports.ClusterDriver
	workers int
	logger  *slog.Logger
	now     func() time.Time
}

// NewInfoReporter creates an InfoReporter that counts at most workers
// collections concurrently. Non-positive values use a default of 4.
func NewInfoReporter(driver ports.ClusterDriver, workers int, logger *slog.Logger) *InfoReporter {
	if workers < 1 {
		workers = defaultCountWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InfoReporter{driver: driver, workers: workers, logger: logger, now: time.Now}
}

// Snapshot lists the collections and counts their documents. Collections
// are sorted by name. Any failure aborts the snapshot.
func (r *InfoReporter) Snapshot(ctx context.Context) (*cluster.DatabaseInfo, error) {
	names, err := r.driver.ListCollections(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list collections",
			slog.String("operation", "Snapshot"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	collections, err := fanout.All(ctx, r.workers, names, func(ctx context.Context, name string) (cluster.CollectionInfo, error) {
		n, err := r.driver.CountDocuments(ctx, name)
		if err != nil {
			return cluster.CollectionInfo{}, fmt.Errorf("counting %s: %w", name, err)
		}
		return cluster.CollectionInfo{Name: name, Count: n}, nil
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to count documents",
			slog.String("operation", "Snapshot"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return cluster.NewDatabaseInfo(r.driver.DatabaseName(), collections, r.now()), nil
}
