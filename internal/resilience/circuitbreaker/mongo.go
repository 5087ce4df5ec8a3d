// This file implements a MongoDB-specific wrapper that protects collection
// reads from cascading failures when the database becomes unavailable or slow.
package circuitbreaker

import (
	"context"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection wraps a MongoDB collection with circuit breaker protection.
// If the circuit is open, operations return gobreaker.ErrOpenState immediately
// without hitting the database.
type MongoCollection struct {
	cb   *CircuitBreaker
	coll *mongo.Collection
}

// NewMongoCollection creates a circuit-breaker-protected collection wrapper
// using the default MongoDB configuration.
func NewMongoCollection(coll *mongo.Collection) *MongoCollection {
	return &MongoCollection{
		cb:   New(MongoConfig()),
		coll: coll,
	}
}

// NewMongoCollectionWithConfig creates a protected collection wrapper with
// custom circuit breaker configuration.
func NewMongoCollectionWithConfig(coll *mongo.Collection, cfg Config) *MongoCollection {
	return &MongoCollection{
		cb:   New(cfg),
		coll: coll,
	}
}

// Find executes a find query with circuit breaker protection.
func (mc *MongoCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	result, err := mc.cb.Execute(func() (interface{}, error) {
		return mc.coll.Find(ctx, filter, opts...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*mongo.Cursor), nil
}

// FindOne executes a single-document query with circuit breaker protection.
// Note: mongo.SingleResult defers errors until Decode, so only the open-circuit
// short-circuit is reported here; a nil result means the circuit is open.
func (mc *MongoCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*mongo.SingleResult, error) {
	if mc.cb.IsOpen() {
		return nil, gobreaker.ErrOpenState
	}
	return mc.coll.FindOne(ctx, filter, opts...), nil
}

// Aggregate executes an aggregation pipeline with circuit breaker protection.
func (mc *MongoCollection) Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error) {
	result, err := mc.cb.Execute(func() (interface{}, error) {
		return mc.coll.Aggregate(ctx, pipeline, opts...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*mongo.Cursor), nil
}

// CountDocuments counts matching documents with circuit breaker protection.
func (mc *MongoCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	result, err := mc.cb.Execute(func() (interface{}, error) {
		return mc.coll.CountDocuments(ctx, filter, opts...)
	})
	if err != nil {
		return 0, err
	}
	return result.(int64), nil
}

// State returns the current state of the circuit breaker.
func (mc *MongoCollection) State() gobreaker.State {
	return mc.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (mc *MongoCollection) IsOpen() bool {
	return mc.cb.IsOpen()
}

// Collection returns the underlying collection. This should only be used for
// operations that don't need circuit breaker protection.
func (mc *MongoCollection) Collection() *mongo.Collection {
	return mc.coll
}
