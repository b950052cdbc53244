package domain

import "time"

// Role is the closed set of actor roles known to the system. Authorization
// decisions are made exclusively against this enumeration.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleTeacher      Role = "teacher"
	RoleStudent      Role = "student"
	RoleParent       Role = "parent"
	RoleAccountant   Role = "accountant"
	RoleLibrarian    Role = "librarian"
	RoleReceptionist Role = "receptionist"
)

// Roles lists every valid role.
var Roles = []Role{
	RoleAdmin,
	RoleTeacher,
	RoleStudent,
	RoleParent,
	RoleAccountant,
	RoleLibrarian,
	RoleReceptionist,
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// OneOf reports whether r is a member of allowed. It is the pure,
// side-effect-free predicate every role-gated route composes.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// User models a registered identity. PasswordHash is never serialized to
// clients and is only populated on the credentials lookup used by login.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	Role         Role      `json:"role" bson:"role"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	Photo        string    `json:"photo,omitempty" bson:"photo,omitempty"`
	Active       bool      `json:"is_active" bson:"is_active"`
	PasswordHash string    `json:"-" bson:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
