package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin marks an account allowed to promote other accounts.
const RoleAdmin = "admin"

// UserAccount represents a registered account. Email is the unique key; Role
// is empty for regular accounts.
type UserAccount struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the account carries the admin role.
func (u UserAccount) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserInput is the POST /users payload.
type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required"`
}
