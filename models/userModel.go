package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the closed set of account roles. Anything outside this set is
// rejected at the API boundary.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// User is created on first sign-in with upsert-by-email semantics; email is
// backed by a unique index.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email" binding:"required,email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}
