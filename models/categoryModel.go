package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups medicines; its lifecycle is admin-owned.
type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CategoryName  string             `bson:"categoryName" json:"categoryName"`
	CategoryImage string             `bson:"categoryImage,omitempty" json:"categoryImage,omitempty"`
	CompanyName   string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
}
