package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Pharmacy struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PharmacyName string             `bson:"pharmacyName" json:"pharmacyName"`
	Address      string             `bson:"address" json:"address"`
	Contact      string             `bson:"contact" json:"contact"`
	OpenHours    string             `bson:"openHours" json:"openHours"`
	Description  string             `bson:"description" json:"description"`
	Images       []string           `bson:"image" json:"image"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
