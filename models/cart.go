package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a menu item a user has added to their cart. Owned by the
// user's email; removed individually or in bulk when a payment settles.
type CartItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuID string             `bson:"menuId,omitempty" json:"menuId,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Price  float64            `bson:"price" json:"price"`
}
