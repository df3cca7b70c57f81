package replset

import (
	"context"
	"errors"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
	"github.com/jsamuelsen11/replset-api/mocks"
)

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}

func TestShutdownHook_DrainsThenDisconnects(t *testing.T) {
	t.Parallel()
	driver := mocks.NewMockClusterDriver(t)
	connectCapturing(driver)

	var mu sync.Mutex
	var order []string
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, s)
	}
	driver.EXPECT().Disconnect(mock.Anything).RunAndReturn(func(context.Context) error {
		record("disconnect")
		return nil
	}).Once()

	m := NewManager(testConfig(time.Second), driver, RetryPolicy{}, discardLogger())
	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	sigs := make(chan os.Signal, 1)
	stopped := make(chan struct{})
	done := m.installShutdownHook(context.Background(), sigs, func() { close(stopped) }, time.Second,
		func(context.Context) error {
			record("drain")
			return nil
		},
	)

	sigs <- syscall.SIGTERM
	waitDone(t, done)

	if len(order) != 2 || order[0] != "drain" || order[1] != "disconnect" {
		t.Fatalf("teardown order = %v, want [drain disconnect]", order)
	}
	if m.State() != cluster.Disconnected {
		t.Fatalf("State() = %s, want disconnected", m.State())
	}
	select {
	case <-stopped:
	default:
		t.Fatal("signal notification was not stopped")
	}
}

func TestShutdownHook_RepeatedSignalsTearDownOnce(t *testing.T) {
	t.Parallel()
	driver := mocks.NewMockClusterDriver(t)
	connectCapturing(driver)
	driver.EXPECT().Disconnect(mock.Anything).Return(nil).Once()

	m := NewManager(testConfig(time.Second), driver, RetryPolicy{}, discardLogger())
	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	sigs := make(chan os.Signal, 3)
	release := make(chan struct{})
	hooks := 0
	done := m.installShutdownHook(context.Background(), sigs, func() {}, time.Second,
		func(context.Context) error {
			hooks++
			<-release
			return nil
		},
	)

	sigs <- syscall.SIGINT
	sigs <- syscall.SIGTERM
	sigs <- syscall.SIGINT
	time.Sleep(20 * time.Millisecond)
	close(release)
	waitDone(t, done)

	if hooks != 1 {
		t.Fatalf("shutdown hook ran %d times, want 1", hooks)
	}
}

func TestShutdownHook_ContextCancel(t *testing.T) {
	t.Parallel()
	driver := mocks.NewMockClusterDriver(t)
	connectCapturing(driver)
	driver.EXPECT().Disconnect(mock.Anything).Return(errors.New("close failed")).Once()

	m := NewManager(testConfig(time.Second), driver, RetryPolicy{}, discardLogger())
	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := m.installShutdownHook(ctx, make(chan os.Signal), func() {}, time.Second,
		func(context.Context) error { return errors.New("drain failed") },
	)
	cancel()
	waitDone(t, done)

	if m.State() != cluster.Disconnected {
		t.Fatalf("State() = %s, want disconnected", m.State())
	}
}

func TestShutdownHook_SignalDuringConnectAbortsRetries(t *testing.T) {
	t.Parallel()
	driver := mocks.NewMockClusterDriver(t)
	entered := blockingConnect(driver, context.Canceled)
	driver.EXPECT().Disconnect(mock.Anything).Return(nil).Once()

	m := NewManager(testConfig(time.Minute), driver,
		RetryPolicy{MaxAttempts: 10, InitialInterval: time.Hour}, discardLogger())

	sigs := make(chan os.Signal, 1)
	drained := false
	done := m.installShutdownHook(context.Background(), sigs, func() {}, time.Second,
		func(context.Context) error {
			drained = true
			return nil
		},
	)

	connectErr := make(chan error, 1)
	go func() { connectErr <- m.Connect(context.Background()) }()
	<-entered

	sigs <- syscall.SIGINT
	waitDone(t, done)

	if err := <-connectErr; !errors.Is(err, ErrClosed) {
		t.Errorf("Connect() error = %v, want it to wrap ErrClosed", err)
	}
	if !drained {
		t.Error("drain hook did not run")
	}
	if m.State() != cluster.Disconnected {
		t.Errorf("State() = %s, want disconnected", m.State())
	}
}
