// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// CRUDService implements ports.CRUDService for a single resource on top of a
// ports.Repository. It validates input, logs failures with the resource name
// and delegates storage. Resource-specific behavior plugs in through hooks.
type CRUDService[E ports.Entity, P ports.Patch] struct {
	resource     string
	repo         ports.Repository[E, P]
	logger       *slog.Logger
	beforeCreate func(context.Context, E) error
	beforeUpdate func(context.Context, P) error
}

// Option configures a CRUDService.
type Option[E ports.Entity, P ports.Patch] func(*CRUDService[E, P])

// WithBeforeCreate runs fn after validation and before the entity is stored.
func WithBeforeCreate[E ports.Entity, P ports.Patch](fn func(context.Context, E) error) Option[E, P] {
	return func(s *CRUDService[E, P]) { s.beforeCreate = fn }
}

// WithBeforeUpdate runs fn after validation and before a non-empty patch is
// applied.
func WithBeforeUpdate[E ports.Entity, P ports.Patch](fn func(context.Context, P) error) Option[E, P] {
	return func(s *CRUDService[E, P]) { s.beforeUpdate = fn }
}

// NewCRUDService creates a CRUDService. resource names the entity kind in
// logs (e.g. "user"). A nil logger is replaced with a no-op logger.
func NewCRUDService[E ports.Entity, P ports.Patch](
	resource string,
	repo ports.Repository[E, P],
	logger *slog.Logger,
	opts ...Option[E, P],
) *CRUDService[E, P] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &CRUDService[E, P]{
		resource: resource,
		repo:     repo,
		logger:   logger.With(slog.String("resource", resource)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and stores a new entity.
func (s *CRUDService[E, P]) Create(ctx context.Context, entity E) (E, error) {
	var zero E
	s.logger.InfoContext(ctx, "creating "+s.resource)

	if err := entity.Validate(); err != nil {
		return zero, err
	}
	if s.beforeCreate != nil {
		if err := s.beforeCreate(ctx, entity); err != nil {
			return zero, err
		}
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		s.logError(ctx, "Create", "", err)
		return zero, err
	}
	return created, nil
}

// List returns every entity.
func (s *CRUDService[E, P]) List(ctx context.Context) ([]E, error) {
	s.logger.DebugContext(ctx, "listing "+s.resource+"s")

	items, err := s.repo.List(ctx)
	if err != nil {
		s.logError(ctx, "List", "", err)
		return nil, err
	}
	return items, nil
}

// Get returns a single entity by ID.
func (s *CRUDService[E, P]) Get(ctx context.Context, id string) (E, error) {
	var zero E
	s.logger.DebugContext(ctx, "fetching "+s.resource, slog.String("id", id))

	entity, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logError(ctx, "Get", id, err)
		return zero, err
	}
	return entity, nil
}

// Update validates and applies a partial update. An empty patch returns the
// current entity without writing.
func (s *CRUDService[E, P]) Update(ctx context.Context, id string, patch P) (E, error) {
	var zero E
	s.logger.InfoContext(ctx, "updating "+s.resource, slog.String("id", id))

	if err := patch.Validate(); err != nil {
		return zero, err
	}
	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}
	if s.beforeUpdate != nil {
		if err := s.beforeUpdate(ctx, patch); err != nil {
			return zero, err
		}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.logError(ctx, "Update", id, err)
		return zero, err
	}
	return updated, nil
}

// Delete removes a single entity.
func (s *CRUDService[E, P]) Delete(ctx context.Context, id string) error {
	_, err := s.remove(ctx, id)
	return err
}

func (s *CRUDService[E, P]) remove(ctx context.Context, id string) (E, error) {
	s.logger.InfoContext(ctx, "deleting "+s.resource, slog.String("id", id))

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logError(ctx, "Delete", id, err)
		return deleted, err
	}
	return deleted, nil
}

// DeleteAll removes every entity of this kind.
func (s *CRUDService[E, P]) DeleteAll(ctx context.Context) error {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.logError(ctx, "DeleteAll", "", err)
		return err
	}
	s.logger.InfoContext(ctx, "deleted all "+s.resource+"s", slog.Int64("count", n))
	return nil
}

func (s *CRUDService[E, P]) logError(ctx context.Context, op, id string, err error) {
	attrs := []any{slog.String("operation", op), slog.Any("error", err)}
	if id != "" {
		attrs = append(attrs, slog.String("id", id))
	}
	s.logger.ErrorContext(ctx, "failed to "+op+" "+s.resource, attrs...)
}
