package appctx_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appctx "github.com/jsamuelsen11/replset-api/internal/app/context"
)

// journal records the order writes and rollbacks happen in.
type journal struct{ entries []string }

type write struct {
	name        string
	j           *journal
	failWith    error
	rollbackErr error
	rollbackCtx context.Context
}

func (w *write) Execute(context.Context) error {
	if w.failWith != nil {
		w.j.entries = append(w.j.entries, "fail "+w.name)
		return w.failWith
	}
	w.j.entries = append(w.j.entries, "do "+w.name)
	return nil
}

func (w *write) Rollback(ctx context.Context) error {
	w.rollbackCtx = ctx
	w.j.entries = append(w.j.entries, "undo "+w.name)
	return w.rollbackErr
}

func (w *write) Description() string { return w.name }

func TestCommit_RunsStagedWritesInOrder(t *testing.T) {
	t.Parallel()
	j := &journal{}
	rc := appctx.New(context.Background())

	for _, name := range []string{"insert like", "link post"} {
		if err := rc.Stage(&write{name: name, j: j}); err != nil {
			t.Fatalf("Stage(%s) error = %v", name, err)
		}
	}
	if rc.Staged() != 2 {
		t.Fatalf("Staged() = %d, want 2", rc.Staged())
	}

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	want := []string{"do insert like", "do link post"}
	if !reflect.DeepEqual(j.entries, want) {
		t.Errorf("journal = %v, want %v", j.entries, want)
	}
	if rc.Staged() != 0 {
		t.Errorf("Staged() after commit = %d, want 0", rc.Staged())
	}
}

func TestCommit_FailureCompensatesNewestFirst(t *testing.T) {
	t.Parallel()
	j := &journal{}
	rc := appctx.New(context.Background())
	linkErr := errors.New("post gone")

	_ = rc.Stage(&write{name: "insert like", j: j})
	_ = rc.Stage(&write{name: "bump counter", j: j, rollbackErr: errors.New("ignored")})
	_ = rc.Stage(&write{name: "link post", j: j, failWith: linkErr})
	_ = rc.Stage(&write{name: "never runs", j: j})

	err := rc.Commit(context.Background())

	var ce *appctx.CommitError
	if !errors.As(err, &ce) {
		t.Fatalf("Commit() error = %v, want *CommitError", err)
	}
	if ce.Step != 3 || ce.Action != "link post" {
		t.Errorf("CommitError = step %d %q, want step 3 %q", ce.Step, ce.Action, "link post")
	}
	if !errors.Is(err, linkErr) {
		t.Errorf("Commit() error does not wrap the failing write's error")
	}

	want := []string{
		"do insert like",
		"do bump counter",
		"fail link post",
		"undo bump counter",
		"undo insert like",
	}
	if !reflect.DeepEqual(j.entries, want) {
		t.Errorf("journal = %v, want %v", j.entries, want)
	}
}

func TestCommit_RollbackSurvivesCancellation(t *testing.T) {
	t.Parallel()
	j := &journal{}
	rc := appctx.New(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	insert := &write{name: "insert like", j: j}
	_ = rc.Stage(insert)
	_ = rc.Stage(&write{name: "link post", j: j, failWith: context.Canceled})
	cancel()

	if err := rc.Commit(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Commit() error = %v, want context.Canceled", err)
	}
	if insert.rollbackCtx == nil {
		t.Fatal("insert was not rolled back")
	}
	if err := insert.rollbackCtx.Err(); err != nil {
		t.Errorf("rollback context already done: %v", err)
	}
}

func TestCommit_IsSingleUse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		first error
	}{
		{"after success", nil},
		{"after failure", errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rc := appctx.New(context.Background())
			_ = rc.Stage(&write{name: "w", j: &journal{}, failWith: tt.first})
			_ = rc.Commit(context.Background())

			if err := rc.Commit(context.Background()); !errors.Is(err, appctx.ErrAlreadyCommitted) {
				t.Errorf("second Commit() error = %v, want ErrAlreadyCommitted", err)
			}
			if err := rc.Stage(&write{name: "late", j: &journal{}}); !errors.Is(err, appctx.ErrAlreadyCommitted) {
				t.Errorf("Stage() after commit error = %v, want ErrAlreadyCommitted", err)
			}
		})
	}
}

func TestCommit_NothingStaged(t *testing.T) {
	t.Parallel()
	rc := appctx.New(context.Background())
	if err := rc.Commit(context.Background()); err != nil {
		t.Errorf("Commit() error = %v, want nil", err)
	}
}

func TestStage_RejectsNil(t *testing.T) {
	t.Parallel()
	rc := appctx.New(context.Background())
	if err := rc.Stage(nil); !errors.Is(err, appctx.ErrNilAction) {
		t.Errorf("Stage(nil) error = %v, want ErrNilAction", err)
	}
	if rc.Staged() != 0 {
		t.Errorf("Staged() = %d, want 0", rc.Staged())
	}
}
