package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Advertisement statuses. Sellers create advertisements as pending; only an
// admin moves them forward.
const (
	AdStatusPending  = "pending"
	AdStatusApproved = "approved"
	AdStatusRejected = "rejected"
)

type Advertisement struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Seller       string             `bson:"seller" json:"seller"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	MedicineName string             `bson:"medicineName,omitempty" json:"medicineName,omitempty"`
	Status       string             `bson:"status" json:"status"`
}
