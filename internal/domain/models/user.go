// internal/domain/models/user.go
package models

import "time"

// Console roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// User is a console operator. PasswordHash is a bcrypt hash and is never
// serialized to clients.
type User struct {
	ID           string     `bson:"_id" json:"id"`
	Email        string     `bson:"email" json:"email"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	Name         string     `bson:"name" json:"name"`
	Role         string     `bson:"role" json:"role"` // admin | manager | viewer
	LastLogin    *time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
	Avatar       string     `bson:"avatar,omitempty" json:"avatar,omitempty"`
}
