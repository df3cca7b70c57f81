package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/domain"
	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
	"github.com/jsamuelsen11/replset-api/internal/domain/user"
)

func TestDriver_NotConnected(t *testing.T) {
	t.Parallel()

	d := NewDriver(nil)
	ctx := context.Background()

	if err := d.Ping(ctx); !errors.Is(err, cluster.ErrNotConnected) {
		t.Errorf("Ping() = %v, want ErrNotConnected", err)
	}
	if _, err := d.ReplicaSetStatus(ctx); !errors.Is(err, cluster.ErrNotConnected) {
		t.Errorf("ReplicaSetStatus() = %v, want ErrNotConnected", err)
	}
	if _, err := d.ListCollections(ctx); !errors.Is(err, cluster.ErrNotConnected) {
		t.Errorf("ListCollections() = %v, want ErrNotConnected", err)
	}
	if _, err := d.CountDocuments(ctx, "users"); !errors.Is(err, cluster.ErrNotConnected) {
		t.Errorf("CountDocuments() = %v, want ErrNotConnected", err)
	}
	if d.DatabaseName() != "" {
		t.Errorf("DatabaseName() = %q before connect, want empty", d.DatabaseName())
	}
}

func TestDriver_DisconnectWithoutConnect(t *testing.T) {
	t.Parallel()

	if err := NewDriver(nil).Disconnect(context.Background()); err != nil {
		t.Errorf("Disconnect() = %v, want nil", err)
	}
}

func TestDriver_ConnectRejectsUnknownReadPreference(t *testing.T) {
	t.Parallel()

	cfg := cluster.NewConfig(cluster.Settings{
		Seeds:          []string{"localhost:27017"},
		Database:       "app",
		ReadPreference: "closest",
	})

	err := NewDriver(nil).Connect(context.Background(), cfg, nil)
	if !errors.Is(err, errUnknownReadPreference) {
		t.Errorf("Connect() = %v, want errUnknownReadPreference", err)
	}
}

func TestReadPreference_AllModes(t *testing.T) {
	t.Parallel()

	for _, p := range []cluster.ReadPreference{
		cluster.ReadPrimary,
		cluster.ReadPrimaryPreferred,
		cluster.ReadSecondary,
		cluster.ReadSecondaryPreferred,
		cluster.ReadNearest,
	} {
		rp, err := readPreference(p)
		if err != nil {
			t.Errorf("readPreference(%q) error: %v", p, err)
			continue
		}
		if rp == nil {
			t.Errorf("readPreference(%q) = nil", p)
		}
	}
}

func TestToReplicaSetStatus(t *testing.T) {
	t.Parallel()

	doc := replSetStatusDoc{
		Set: "rs0",
		Members: []replSetMemberDoc{
			{Name: "db1:27017", StateStr: "PRIMARY", Health: 1, Uptime: 90},
			{Name: "db2:27017", StateStr: "(not reachable/healthy)", Health: 0},
		},
	}

	status := toReplicaSetStatus(doc)

	if status.SetName != "rs0" {
		t.Errorf("SetName = %q, want rs0", status.SetName)
	}
	if len(status.Members) != 2 {
		t.Fatalf("len(Members) = %d, want 2", len(status.Members))
	}
	if status.Members[0].Uptime != 90*time.Second {
		t.Errorf("Uptime = %v, want 90s", status.Members[0].Uptime)
	}
	if status.HealthyCount() != 1 {
		t.Errorf("HealthyCount() = %d, want 1", status.HealthyCount())
	}
}

func TestRepository_NotConnectedIsUnavailable(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(NewDriver(nil), NewGuard(testStoreConfig(), nil, nil))

	_, err := repo.Create(context.Background(), &user.User{Name: "Ada", Email: "ada@example.com"})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Create() = %v, want ErrUnavailable", err)
	}
}

func TestRepository_InvalidIDSkipsStore(t *testing.T) {
	t.Parallel()

	g := NewGuard(testStoreConfig(), nil, nil)
	repo := NewPostRepository(NewDriver(nil), g)
	ctx := context.Background()

	for name, call := range map[string]func() error{
		"get":    func() error { _, err := repo.Get(ctx, "nope"); return err },
		"delete": func() error { _, err := repo.Delete(ctx, "nope"); return err },
		"link":   func() error { return repo.LinkLike(ctx, "nope", "nope") },
	} {
		if err := call(); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: error = %v, want ErrValidation", name, err)
		}
	}

	if err := g.HealthCheck(ctx); err != nil {
		t.Errorf("breaker tripped by invalid IDs: %v", err)
	}
}
