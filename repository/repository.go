// Package repository wraps collection access so controllers stay free of
// driver details and tests can swap in fakes.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when an id does not resolve. Malformed ids resolve
// to the same error; the clients only ever see a not-found signal.
var ErrNotFound = errors.New("record not found")

// Resource is the mongo-backed store for the owner-less resource types.
type Resource[T any] struct {
	coll *mongo.Collection
}

func NewResource[T any](coll *mongo.Collection) *Resource[T] {
	return &Resource[T]{coll: coll}
}

func (r *Resource[T]) Insert(ctx context.Context, doc *T) error {
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

func (r *Resource[T]) All(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *Resource[T]) ByID(ctx context.Context, id string) (*T, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc T
	err = r.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetField overwrites a single field, used for the status and availability
// toggles.
func (r *Resource[T]) SetField(ctx context.Context, id, field string, value any) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.UpdateByID(ctx, objID, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
