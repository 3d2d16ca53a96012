package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IsuruKaushika/UNITUNES-sub000/models"
	"github.com/IsuruKaushika/UNITUNES-sub000/ownership"
)

// Boarding is the mongo store for the one owner-aware resource; it adds the
// owner-scoped query and full-document replace the rule engine needs.
type Boarding struct {
	coll *mongo.Collection
}

func NewBoarding(coll *mongo.Collection) *Boarding {
	return &Boarding{coll: coll}
}

func (r *Boarding) Insert(ctx context.Context, b *models.Boarding) error {
	_, err := r.coll.InsertOne(ctx, b)
	return err
}

func (r *Boarding) All(ctx context.Context) ([]models.Boarding, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	boardings := []models.Boarding{}
	if err := cursor.All(ctx, &boardings); err != nil {
		return nil, err
	}
	return boardings, nil
}

func (r *Boarding) ByID(ctx context.Context, id string) (*models.Boarding, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var b models.Boarding
	err = r.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Replace writes the merged document back whole; the controller has already
// applied the partial-update policy in memory.
func (r *Boarding) Replace(ctx context.Context, id string, b *models.Boarding) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": objID}, b)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Boarding) Delete(ctx context.Context, id string) error {
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

func (r *Boarding) Mine(ctx context.Context, p ownership.Principal) ([]models.Boarding, error) {
	cursor, err := r.coll.Find(ctx, ownership.MineFilter(p))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	boardings := []models.Boarding{}
	if err := cursor.All(ctx, &boardings); err != nil {
		return nil, err
	}
	return boardings, nil
}
