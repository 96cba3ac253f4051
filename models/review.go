package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a customer review shown on the site.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details,omitempty" json:"details,omitempty"`
	Rating  float64            `bson:"rating" json:"rating"`
}
