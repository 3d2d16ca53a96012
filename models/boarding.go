package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Boarding is the one owner-aware listing type. OwnerID and OwnerType are
// either both set or both absent; records written before ownership tracking
// ("legacy" records) have neither.
type Boarding struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"Title" json:"Title"`
	Owner       string             `bson:"owner" json:"owner"`
	Address     string             `bson:"address" json:"address"`
	Contact     string             `bson:"contact" json:"contact"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Rooms       int                `bson:"Rooms" json:"Rooms"`
	BathRooms   int                `bson:"bathRooms" json:"bathRooms"`
	Gender      string             `bson:"gender" json:"gender"`
	Images      []string           `bson:"image" json:"image"`
	OwnerID     string             `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	OwnerType   string             `bson:"ownerType,omitempty" json:"ownerType,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
