package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jsamuelsen11/replset-api/internal/domain"
	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
)

// translateError maps driver and guard failures to domain errors. Errors that
// already carry a domain sentinel pass through unchanged.
func translateError(resource string, err error) error {
	if err == nil {
		return nil
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrUnavailable):
		return err

	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", resource, domain.ErrNotFound)

	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s already exists: %w", resource, domain.ErrConflict)

	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%s store: %w: %w", resource, domain.ErrUnavailable, err)

	case errors.Is(err, cluster.ErrNotConnected),
		errors.Is(err, mongo.ErrClientDisconnected),
		mongo.IsNetworkError(err),
		mongo.IsTimeout(err):
		return fmt.Errorf("%s store: %w: %w", resource, domain.ErrUnavailable, err)

	default:
		return fmt.Errorf("%s store: %w", resource, err)
	}
}

// isFailure decides which errors count against the circuit breaker. Caller
// mistakes and cancellations say nothing about the store's health.
func isFailure(err error) bool {
	if err == nil {
		return false
	}
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, mongo.ErrNoDocuments),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, context.Canceled),
		mongo.IsDuplicateKeyError(err):
		return false
	}
	return true
}

// parseID converts a hex string into an ObjectID, reporting malformed input
// as a validation failure on field.
func parseID(field, id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, domain.NewFieldError(field, domain.MsgInvalidID)
	}
	return oid, nil
}

// parseOptionalID is parseID for references that may be empty.
func parseOptionalID(field, id string) (bson.ObjectID, error) {
	if id == "" {
		return bson.NilObjectID, nil
	}
	return parseID(field, id)
}

func hexOrEmpty(oid bson.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

func secondsToDuration(s int64) time.Duration {
	return time.Duration(s) * time.Second
}
