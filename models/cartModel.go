package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem belongs to the buyer identified by Email. TotalPrice is stored,
// not derived on read: it is recomputed as Price * Quantity on every
// quantity update.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email" binding:"required,email"`
	MedicineID string             `bson:"medicineId" json:"medicineId" binding:"required"`
	ItemName   string             `bson:"itemName,omitempty" json:"itemName,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Company    string             `bson:"company,omitempty" json:"company,omitempty"`
	Price      float64            `bson:"price" json:"price"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	TotalPrice float64            `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
}
