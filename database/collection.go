package database

import (
	"context"
	"errors"

	"github.com/parmaworld/parmaworld-api/httperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateResult mirrors the driver's matched/modified counters. A zero
// Matched means the target document does not exist.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// Store is the generic contract every resource collection exposes. All six
// resources share one implementation; handlers depend on this interface so
// tests can substitute fakes.
type Store[T any] interface {
	Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error)
	FindOne(ctx context.Context, filter bson.M) (*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id string, set bson.M) (UpdateResult, error)
	UpdateOne(ctx context.Context, filter bson.M, set bson.M) (UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	DeleteMany(ctx context.Context, filter bson.M) (int64, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]T, error)
}

// Collection is the MongoDB-backed Store implementation.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](coll *mongo.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, httperr.ErrInvalidID
	}
	return oid, nil
}

func (c *Collection[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	// An empty slice rather than nil so empty lists serialize as [].
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindOne returns (nil, nil) when no document matches.
func (c *Collection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindByID returns (nil, nil) when the document is absent and ErrInvalidID
// when id is not a valid object id.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return c.FindOne(ctx, bson.M{"_id": oid})
}

func (c *Collection[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	result, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, _ := result.InsertedID.(primitive.ObjectID)
	return oid, nil
}

// UpdateByID applies a $set partial merge to the identified document.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, set bson.M) (UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return UpdateResult{}, err
	}
	return c.UpdateOne(ctx, bson.M{"_id": oid}, set)
}

func (c *Collection[T]) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (UpdateResult, error) {
	result, err := c.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

// DeleteByID is idempotent: deleting an absent document returns 0, not an
// error.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (c *Collection[T]) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	result, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (c *Collection[T]) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// IsDuplicateKey reports whether err is a unique-index violation, used by
// the user upsert to detect a concurrent first sign-in.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
