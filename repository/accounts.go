package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Accounts is the store for the credentialed record types (students and
// service providers), which are looked up by email at login.
type Accounts[T any] struct {
	coll *mongo.Collection
}

func NewAccounts[T any](coll *mongo.Collection) *Accounts[T] {
	return &Accounts[T]{coll: coll}
}

func (r *Accounts[T]) Insert(ctx context.Context, doc *T) error {
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

func (r *Accounts[T]) ByEmail(ctx context.Context, email string) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
