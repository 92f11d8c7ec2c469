package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem stores only the medicine reference and quantity. ItemName,
// Email and TotalPrice are filled in at read time from the current catalog
// and are never written back to the order document.
type OrderItem struct {
	MedicineID string  `bson:"medicineId" json:"medicineId"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	ItemName   string  `bson:"itemName,omitempty" json:"itemName,omitempty"`
	Email      string  `bson:"email,omitempty" json:"email,omitempty"`
	TotalPrice float64 `bson:"totalPrice,omitempty" json:"totalPrice,omitempty"`
}

// Order is immutable once created except for Status, which only an admin
// may change.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Buyer         string             `bson:"buyer" json:"buyer"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	MedicineItem  []OrderItem        `bson:"medicineItem" json:"medicineItem"`
	Status        string             `bson:"status" json:"status"`
	OrderDate     time.Time          `bson:"orderDate" json:"orderDate"`
}
