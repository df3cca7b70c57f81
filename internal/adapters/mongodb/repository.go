package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DatabaseProvider hands out the application database once connected.
// [Driver] implements it.
type DatabaseProvider interface {
	Database() (*mongo.Database, error)
}

// codec converts between entity E, patch P and stored document D.
type codec[E, P, D any] struct {
	// newDoc builds the document to insert, assigning a fresh ID and both
	// timestamps.
	newDoc func(entity E, now time.Time) (D, error)
	// toEntity converts a stored document back to the entity.
	toEntity func(doc *D) E
	// setFields returns the $set body for a patch, including updatedAt.
	setFields func(patch P, now time.Time) (bson.D, error)
}

// Repository is a generic CRUD repository over one collection. Every call
// goes through the shared [Guard] and every error through translateError.
type Repository[E, P, D any] struct {
	db         DatabaseProvider
	guard      *Guard
	collection string
	resource   string
	codec      codec[E, P, D]
	now        func() time.Time
}

func newRepository[E, P, D any](
	db DatabaseProvider, guard *Guard, collection, resource string, c codec[E, P, D],
) *Repository[E, P, D] {
	return &Repository[E, P, D]{
		db:         db,
		guard:      guard,
		collection: collection,
		resource:   resource,
		codec:      c,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// Create inserts the entity and returns it with its ID and timestamps.
func (r *Repository[E, P, D]) Create(ctx context.Context, entity E) (E, error) {
	var zero E

	doc, err := r.codec.newDoc(entity, r.now())
	if err != nil {
		return zero, err
	}

	err = r.run(ctx, "insert", func(ctx context.Context, coll *mongo.Collection) error {
		_, err := coll.InsertOne(ctx, doc)
		return err
	})
	if err != nil {
		return zero, err
	}
	return r.codec.toEntity(&doc), nil
}

// List returns every document in insertion order.
func (r *Repository[E, P, D]) List(ctx context.Context) ([]E, error) {
	var docs []D
	err := r.run(ctx, "find", func(ctx context.Context, coll *mongo.Collection) error {
		cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			return err
		}
		return cur.All(ctx, &docs)
	})
	if err != nil {
		return nil, err
	}

	out := make([]E, 0, len(docs))
	for i := range docs {
		out = append(out, r.codec.toEntity(&docs[i]))
	}
	return out, nil
}

// Get returns a single entity by ID.
func (r *Repository[E, P, D]) Get(ctx context.Context, id string) (E, error) {
	var zero E

	oid, err := parseID("id", id)
	if err != nil {
		return zero, err
	}

	var doc D
	err = r.run(ctx, "findOne", func(ctx context.Context, coll *mongo.Collection) error {
		return coll.FindOne(ctx, byID(oid)).Decode(&doc)
	})
	if err != nil {
		return zero, err
	}
	return r.codec.toEntity(&doc), nil
}

// Update applies the patch and returns the stored result.
func (r *Repository[E, P, D]) Update(ctx context.Context, id string, patch P) (E, error) {
	var zero E

	oid, err := parseID("id", id)
	if err != nil {
		return zero, err
	}
	set, err := r.codec.setFields(patch, r.now())
	if err != nil {
		return zero, err
	}

	var doc D
	err = r.run(ctx, "findOneAndUpdate", func(ctx context.Context, coll *mongo.Collection) error {
		return coll.FindOneAndUpdate(ctx, byID(oid), bson.D{{Key: "$set", Value: set}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
	})
	if err != nil {
		return zero, err
	}
	return r.codec.toEntity(&doc), nil
}

// Delete removes a single entity and returns it.
func (r *Repository[E, P, D]) Delete(ctx context.Context, id string) (E, error) {
	var zero E

	oid, err := parseID("id", id)
	if err != nil {
		return zero, err
	}

	var doc D
	err = r.run(ctx, "findOneAndDelete", func(ctx context.Context, coll *mongo.Collection) error {
		return coll.FindOneAndDelete(ctx, byID(oid)).Decode(&doc)
	})
	if err != nil {
		return zero, err
	}
	return r.codec.toEntity(&doc), nil
}

// DeleteAll removes every document in the collection.
func (r *Repository[E, P, D]) DeleteAll(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.run(ctx, "deleteMany", func(ctx context.Context, coll *mongo.Collection) error {
		res, err := coll.DeleteMany(ctx, bson.D{})
		if err != nil {
			return err
		}
		deleted = res.DeletedCount
		return nil
	})
	return deleted, err
}

// run resolves the collection and executes fn through the guard.
func (r *Repository[E, P, D]) run(
	ctx context.Context, op string, fn func(ctx context.Context, coll *mongo.Collection) error,
) error {
	err := r.guard.Do(ctx, op, r.collection, func(ctx context.Context) error {
		db, err := r.db.Database()
		if err != nil {
			return err
		}
		return fn(ctx, db.Collection(r.collection))
	})
	return translateError(r.resource, err)
}

func byID(oid bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: oid}}
}
