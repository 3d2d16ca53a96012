package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RentItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ItemName    string             `bson:"itemName" json:"itemName"`
	Category    string             `bson:"category" json:"category"`
	Contact     string             `bson:"contact" json:"contact"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	IsAvailable bool               `bson:"isAvailable" json:"isAvailable"`
	Images      []string           `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
