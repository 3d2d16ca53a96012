package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Shop struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ShopName    string             `bson:"shopName" json:"shopName"`
	Category    string             `bson:"category" json:"category"`
	Address     string             `bson:"address" json:"address"`
	Contact     string             `bson:"contact" json:"contact"`
	Description string             `bson:"description" json:"description"`
	Images      []string           `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
