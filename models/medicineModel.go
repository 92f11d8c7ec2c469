package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Medicine is a catalog item owned by the seller identified by Email.
// Discount is untyped because legacy documents store it as either a string
// or a number; the discount aggregation casts it inside the database.
type Medicine struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ItemName         string             `bson:"itemName" json:"itemName"`
	GenericName      string             `bson:"genericName,omitempty" json:"genericName,omitempty"`
	ShortDescription string             `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	Company          string             `bson:"company,omitempty" json:"company,omitempty"`
	ItemMassUnit     string             `bson:"itemMassUnit,omitempty" json:"itemMassUnit,omitempty"`
	PerUnitPrice     float64            `bson:"perUnitPrice" json:"perUnitPrice"`
	Discount         any                `bson:"discount,omitempty" json:"discount,omitempty"`
	Email            string             `bson:"email" json:"email"`
}
