package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Provider is a service provider account (taxi drivers, shop owners and the
// like) with its own registration and login flow.
type Provider struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Contact     string             `bson:"contact" json:"contact"`
	ServiceType string             `bson:"serviceType" json:"serviceType"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
