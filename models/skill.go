package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill statuses as the clients render them.
const (
	SkillStatusAvailable   = "Available"
	SkillStatusUnavailable = "Unavailable"
)

type Skill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SkillTitle  string             `bson:"skillTitle" json:"skillTitle"`
	PersonName  string             `bson:"personName" json:"personName"`
	Contact     string             `bson:"contact" json:"contact"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	Images      []string           `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
