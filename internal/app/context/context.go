// Package appctx carries per-request state for multi-step writes.
//
// A RequestContext memoizes reference lookups and stages writes that must
// succeed together. Creating a like, for instance, checks that its user and
// post exist, then stages the insert and the link into the post:
//
//	rc := appctx.FromContext(ctx)
//	if _, err := appctx.GetOrFetch(rc, "post:"+postID, fetchPost); err != nil {
//		return err
//	}
//	_ = rc.Stage(insert)
//	_ = rc.Stage(link)
//	return rc.Commit(ctx)
//
// The HTTP layer installs one RequestContext per request. It must not be
// shared across requests.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/replset-api/internal/domain"
)

// ErrTypeMismatch means one cache key was read with two different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext wraps a context.Context with a lookup cache and a queue of
// staged writes.
type RequestContext struct {
	context.Context

	cache map[string]memo

	mu        sync.Mutex
	staged    []domain.Action
	committed bool
}

type memo struct {
	value any
	err   error
}

type ctxKey struct{}

// New returns an empty RequestContext bound to ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, cache: map[string]memo{}}
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext installed in ctx. Outside an HTTP
// request it returns a new one bound to ctx, so callers never get nil.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(ctxKey{}).(*RequestContext); ok && rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the memoized result for key, calling fetch on the first
// use only. Failures are memoized as well, so a missing post is looked up
// once per request however many likes reference it.
//
// GetOrFetch is not safe for concurrent use.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	m, hit := rc.cache[key]
	if !hit {
		v, err := fetch(rc.Context)
		rc.cache[key] = memo{value: v, err: err}
		return v, err
	}

	var zero T
	if m.err != nil {
		return zero, m.err
	}
	v, ok := m.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T, want %T", ErrTypeMismatch, key, m.value, zero)
	}
	return v, nil
}
