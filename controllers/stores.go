package controllers

import (
	"context"

	"github.com/IsuruKaushika/UNITUNES-sub000/models"
	"github.com/IsuruKaushika/UNITUNES-sub000/ownership"
)

// BoardingStore is what the boarding controller needs from persistence; the
// mongo implementation lives in repository, tests use an in-memory fake.
type BoardingStore interface {
	Insert(ctx context.Context, b *models.Boarding) error
	All(ctx context.Context) ([]models.Boarding, error)
	ByID(ctx context.Context, id string) (*models.Boarding, error)
	Replace(ctx context.Context, id string, b *models.Boarding) error
	Delete(ctx context.Context, id string) error
	Mine(ctx context.Context, p ownership.Principal) ([]models.Boarding, error)
}

// ResourceStore covers the owner-less resource types.
type ResourceStore[T any] interface {
	Insert(ctx context.Context, doc *T) error
	All(ctx context.Context) ([]T, error)
	ByID(ctx context.Context, id string) (*T, error)
	Delete(ctx context.Context, id string) error
	SetField(ctx context.Context, id, field string, value any) error
}

// AccountStore covers the credentialed record types.
type AccountStore[T any] interface {
	Insert(ctx context.Context, doc *T) error
	ByEmail(ctx context.Context, email string) (*T, error)
}
