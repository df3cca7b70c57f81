package fanout_test

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/replset-api/internal/app/fanout"
)

var collections = []string{"likes", "posts", "users", "sessions", "audit"}

func TestAll_KeepsItemOrder(t *testing.T) {
	t.Parallel()

	// Shorter sleeps for longer names, so items finish out of order.
	got, err := fanout.All(context.Background(), len(collections), collections,
		func(_ context.Context, name string) (int, error) {
			time.Sleep(time.Duration(10-len(name)) * time.Millisecond)
			return len(name), nil
		})
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	want := []int{5, 5, 5, 8, 5}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestAll_Empty(t *testing.T) {
	t.Parallel()

	got, err := fanout.All(context.Background(), 4, nil, func(context.Context, string) (int64, error) {
		t.Fatal("fn called for empty input")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("All() = %#v, want empty non-nil slice", got)
	}
}

func TestAll_CapsConcurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		want    int32
	}{
		{"two workers", 2, 2},
		{"zero runs serially", 0, 1},
		{"negative runs serially", -3, 1},
		{"more workers than items", 50, int32(len(collections))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var inFlight, peak atomic.Int32
			_, err := fanout.All(context.Background(), tt.workers, collections,
				func(context.Context, string) (struct{}, error) {
					n := inFlight.Add(1)
					for {
						p := peak.Load()
						if n <= p || peak.CompareAndSwap(p, n) {
							break
						}
					}
					time.Sleep(15 * time.Millisecond)
					inFlight.Add(-1)
					return struct{}{}, nil
				})
			if err != nil {
				t.Fatalf("All() error = %v", err)
			}
			if got := peak.Load(); got > tt.want {
				t.Errorf("peak concurrency = %d, want at most %d", got, tt.want)
			}
		})
	}
}

func TestAll_FirstErrorCancelsOthers(t *testing.T) {
	t.Parallel()

	errCount := errors.New("count failed")
	var sawCancel atomic.Bool

	got, err := fanout.All(context.Background(), len(collections), collections,
		func(ctx context.Context, name string) (int64, error) {
			if name == "posts" {
				time.Sleep(20 * time.Millisecond)
				return 0, errCount
			}
			select {
			case <-ctx.Done():
				sawCancel.Store(true)
				return 0, ctx.Err()
			case <-time.After(time.Second):
				return 1, nil
			}
		})

	if !errors.Is(err, errCount) {
		t.Fatalf("All() error = %v, want %v", err, errCount)
	}
	if got != nil {
		t.Errorf("All() values = %v, want nil on error", got)
	}
	if !sawCancel.Load() {
		t.Error("siblings were not canceled")
	}
}

func TestAll_CanceledParentSkipsWork(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := fanout.All(ctx, 1, collections, func(context.Context, string) (int, error) {
		calls.Add(1)
		return 0, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("All() error = %v, want context.Canceled", err)
	}
	if calls.Load() != 0 {
		t.Errorf("fn called %d times after cancellation", calls.Load())
	}
}
