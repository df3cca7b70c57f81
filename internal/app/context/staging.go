package appctx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/replset-api/internal/domain"
	"github.com/jsamuelsen11/replset-api/internal/platform/logging"
)

var (
	// ErrAlreadyCommitted is returned by Stage and Commit once Commit ran.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned by Stage for a nil action.
	ErrNilAction = errors.New("appctx: nil action")
)

// CommitError reports the staged write that failed. Writes before it have
// been compensated by the time it is returned.
type CommitError struct {
	Step   int
	Action string
	Err    error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Action, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

// Stage queues a write for Commit. Safe for concurrent use.
func (rc *RequestContext) Stage(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.staged = append(rc.staged, action)
	return nil
}

// Staged reports how many writes are waiting for Commit.
func (rc *RequestContext) Staged() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.committed {
		return 0
	}
	return len(rc.staged)
}

// Commit runs the staged writes in order. When one fails the writes that
// already succeeded are rolled back newest first and a *CommitError is
// returned. Rollback failures are logged only.
//
// Rollbacks run detached from ctx cancellation: a request that times out
// half way through still gets its earlier writes undone.
//
// The RequestContext is spent afterwards whatever the outcome.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.committed {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	staged := rc.staged
	rc.staged = nil
	rc.mu.Unlock()

	logger := logging.FromContext(ctx).With(slog.Int("steps", len(staged)))

	for i, action := range staged {
		logger.DebugContext(ctx, "commit step",
			slog.Int("step", i+1),
			slog.String("action", action.Description()),
		)
		err := action.Execute(ctx)
		if err == nil {
			continue
		}

		logger.WarnContext(ctx, "commit step failed, compensating",
			slog.Int("step", i+1),
			slog.String("action", action.Description()),
			slog.Any("error", err),
		)
		compensate(context.WithoutCancel(ctx), logger, staged[:i])
		return &CommitError{Step: i + 1, Action: action.Description(), Err: err}
	}
	return nil
}

func compensate(ctx context.Context, logger *slog.Logger, done []domain.Action) {
	for i := len(done) - 1; i >= 0; i-- {
		if err := done[i].Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.Int("step", i+1),
				slog.String("action", done[i].Description()),
				slog.Any("error", err),
			)
			continue
		}
		logger.InfoContext(ctx, "rolled back",
			slog.Int("step", i+1),
			slog.String("action", done[i].Description()),
		)
	}
}
