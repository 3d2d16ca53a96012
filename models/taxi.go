package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Taxi struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	DriverName    string             `bson:"driverName" json:"driverName"`
	Contact       string             `bson:"contact" json:"contact"`
	VehicleType   string             `bson:"vehicleType" json:"vehicleType"`
	VehicleNumber string             `bson:"vehicleNumber" json:"vehicleNumber"`
	Price         float64            `bson:"price" json:"price"`
	Description   string             `bson:"description" json:"description"`
	Images        []string           `bson:"image" json:"image"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
