package replset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/replset-api/mocks"
)

func TestSnapshot_SortedCounts(t *testing.T) {
	t.Parallel()
	driver := mocks.NewMockClusterDriver(t)
	driver.EXPECT().ListCollections(mock.Anything).Return([]string{"users", "likes", "posts"}, nil)
	driver.EXPECT().CountDocuments(mock.Anything, "users").Return(int64(3), nil)
	driver.EXPECT().CountDocuments(mock.Anything, "likes").Return(int64(7), nil)
	driver.EXPECT().CountDocuments(mock.Anything, "posts").Return(int64(5), nil)
	driver.EXPECT().DatabaseName().Return("commonDB")

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := NewInfoReporter(driver, 2, discardLogger())
	r.now = func() time.Time { return at }

	info, err := r.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v, want nil", err)
	}

	if info.Name != "commonDB" || !info.CapturedAt.Equal(at) {
		t.Errorf("info = %s at %v, want commonDB at %v", info.Name, info.CapturedAt, at)
	}
	want := []struct {
		name  string
		count int64
	}{{"likes", 7}, {"posts", 5}, {"users", 3}}
	if len(info.Collections) != len(want) {
		t.Fatalf("got %d collections, want %d", len(info.Collections), len(want))
	}
	for i, w := range want {
		if info.Collections[i].Name != w.name || info.Collections[i].Count != w.count {
			t.Errorf("Collections[%d] = %+v, want %s=%d", i, info.Collections[i], w.name, w.count)
		}
	}
}

func TestSnapshot_EmptyDatabase(t *testing.T) {
	t.Parallel()
	driver := mocks.NewMockClusterDriver(t)
	driver.EXPECT().ListCollections(mock.Anything).Return([]string{}, nil)
	driver.EXPECT().DatabaseName().Return("commonDB")

	info, err := NewInfoReporter(driver, 0, nil).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v, want nil", err)
	}
	if len(info.Collections) != 0 {
		t.Fatalf("Collections = %v, want empty", info.Collections)
	}
}

func TestSnapshot_ListFails(t *testing.T) {
	t.Parallel()
	driver := mocks.NewMockClusterDriver(t)
	listErr := errors.New("not primary")
	driver.EXPECT().ListCollections(mock.Anything).Return(nil, listErr)

	_, err := NewInfoReporter(driver, 2, discardLogger()).Snapshot(context.Background())
	if !errors.Is(err, listErr) {
		t.Fatalf("Snapshot() error = %v, want %v", err, listErr)
	}
}

func TestSnapshot_CountFails(t *testing.T) {
	t.Parallel()
	driver := mocks.NewMockClusterDriver(t)
	countErr := errors.New("interrupted")
	driver.EXPECT().ListCollections(mock.Anything).Return([]string{"users"}, nil)
	driver.EXPECT().CountDocuments(mock.Anything, "users").Return(int64(0), countErr)

	_, err := NewInfoReporter(driver, 2, discardLogger()).Snapshot(context.Background())
	if !errors.Is(err, countErr) {
		t.Fatalf("Snapshot() error = %v, want %v", err, countErr)
	}
}
